package input

// Interpreter consumes one inbound text message from a watched channel and
// returns the reply to post, if any. Sessions are keyed by (channel, author),
// so the adapter passes both through unchanged.
type Interpreter interface {
	Handle(channelID, authorID, content string) (reply string, ok bool)
}

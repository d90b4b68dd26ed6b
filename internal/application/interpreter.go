package application

import (
	"strconv"
	"strings"
	"sync"

	"ravensbot/internal/domain/entities"
	"ravensbot/internal/ports/output"
)

// Trigger commands. Only an idle session recognizes them; anything typed
// mid-flow that does not match the expected shape cancels the flow instead.
const (
	cmdHelp           = "help"
	cmdCancelPractice = "bot_cancel_practice"
	cmdChangeChannels = "bot_change_channel_path"
	replyToggle       = "toggle"

	practiceMenuSize = 6
)

type flowState int

const (
	statePracticeSelect flowState = iota
	statePracticeConfirm
	stateChannelSelect
	stateChannelName
)

// session is one in-progress menu flow. The menu snapshot taken when the flow
// opened stays authoritative: the occurrence toggled at confirm time is the
// one the user selected, even if the clock has crossed a day boundary since.
type session struct {
	state    flowState
	menu     []entities.Occurrence
	selected entities.Occurrence
	slot     int
}

// SessionKey scopes a menu flow to one author in one channel, so concurrent
// users never consume each other's replies.
type SessionKey struct {
	ChannelID string
	AuthorID  string
}

// Interpreter is the text command/menu state machine. It emits at most one
// reply per inbound message and is the only writer of the cancellation set
// and the room slots.
type Interpreter struct {
	schedule *ScheduleService
	rooms    *RoomConfig
	tr       output.T
	locale   string

	mu       sync.Mutex
	sessions map[SessionKey]*session
}

func NewInterpreter(schedule *ScheduleService, rooms *RoomConfig, tr output.T, locale string) *Interpreter {
	return &Interpreter{
		schedule: schedule,
		rooms:    rooms,
		tr:       tr,
		locale:   locale,
		sessions: make(map[SessionKey]*session),
	}
}

// Handle consumes one inbound message. ok is false when no reply should be
// sent (unrecognized input while idle).
func (i *Interpreter) Handle(channelID, authorID, content string) (reply string, ok bool) {
	key := SessionKey{ChannelID: channelID, AuthorID: authorID}
	i.mu.Lock()
	defer i.mu.Unlock()

	sess, active := i.sessions[key]
	if !active {
		return i.handleIdle(key, content)
	}
	switch sess.state {
	case statePracticeSelect:
		return i.handlePracticeSelect(key, sess, content), true
	case statePracticeConfirm:
		return i.handlePracticeConfirm(key, sess, content), true
	case stateChannelSelect:
		return i.handleChannelSelect(key, sess, content), true
	case stateChannelName:
		return i.handleChannelName(key, sess, content), true
	}
	delete(i.sessions, key)
	return "", false
}

func (i *Interpreter) handleIdle(key SessionKey, content string) (string, bool) {
	switch {
	case strings.EqualFold(strings.TrimSpace(content), cmdHelp):
		return i.t("help", nil), true
	case content == cmdCancelPractice:
		menu := i.schedule.NextOccurrences(practiceMenuSize)
		i.sessions[key] = &session{state: statePracticeSelect, menu: menu}
		return i.renderPracticeMenu(menu), true
	case content == cmdChangeChannels:
		i.sessions[key] = &session{state: stateChannelSelect}
		return i.renderChannelMenu(), true
	}
	return "", false
}

func (i *Interpreter) handlePracticeSelect(key SessionKey, sess *session, content string) string {
	choice, err := strconv.Atoi(strings.TrimSpace(content))
	if err != nil || choice < 1 || choice > len(sess.menu) {
		delete(i.sessions, key)
		return i.t("practice_menu_cancelled", nil)
	}
	sess.selected = sess.menu[choice-1]
	sess.state = statePracticeConfirm
	return i.t("practice_selected", map[string]any{
		"Weekday": sess.selected.Weekday(),
		"Date":    sess.selected.Key,
		"Status":  i.statusLabel(sess.selected.Key),
	})
}

func (i *Interpreter) handlePracticeConfirm(key SessionKey, sess *session, content string) string {
	delete(i.sessions, key)
	if !strings.EqualFold(strings.TrimSpace(content), replyToggle) {
		return i.t("practice_no_changes", nil)
	}
	data := map[string]any{"Weekday": sess.selected.Weekday(), "Date": sess.selected.Key}
	if i.schedule.Toggle(sess.selected.Key) {
		return i.t("practice_cancelled", data)
	}
	return i.t("practice_reenabled", data)
}

func (i *Interpreter) handleChannelSelect(key SessionKey, sess *session, content string) string {
	slots := i.rooms.Slots()
	choice, err := strconv.Atoi(strings.TrimSpace(content))
	if err != nil || choice < 1 || choice > len(slots) {
		delete(i.sessions, key)
		return i.t("channel_menu_cancelled", nil)
	}
	sess.slot = choice
	sess.state = stateChannelName
	return i.t("channel_name_prompt", nil)
}

func (i *Interpreter) handleChannelName(key SessionKey, sess *session, content string) string {
	delete(i.sessions, key)
	slot, err := i.rooms.Rename(sess.slot, content)
	if err != nil {
		return i.t("channel_menu_cancelled", nil)
	}
	return i.t("channel_updated", map[string]any{"Index": slot.Index, "Name": slot.Name})
}

func (i *Interpreter) renderPracticeMenu(menu []entities.Occurrence) string {
	var b strings.Builder
	b.WriteString(i.t("practice_menu_header", nil))
	b.WriteString("\n")
	for idx, occ := range menu {
		b.WriteString(i.t("practice_menu_entry", map[string]any{
			"Index":   idx + 1,
			"Weekday": occ.Weekday(),
			"Date":    occ.Key,
			"Status":  i.statusLabel(occ.Key),
		}))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(i.t("practice_menu_footer", nil))
	return b.String()
}

func (i *Interpreter) renderChannelMenu() string {
	var b strings.Builder
	b.WriteString(i.t("channel_menu_header", nil))
	b.WriteString("\n")
	for _, slot := range i.rooms.Slots() {
		b.WriteString(i.t("channel_menu_entry", map[string]any{
			"Index": slot.Index,
			"Label": slot.Label,
			"Name":  slot.Name,
		}))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(i.t("channel_menu_footer", nil))
	return b.String()
}

func (i *Interpreter) statusLabel(key string) string {
	if i.schedule.IsCancelled(key) {
		return i.t("status_cancelled", nil)
	}
	return i.t("status_active", nil)
}

func (i *Interpreter) t(key string, data map[string]any) string {
	return i.tr.T(i.locale, key, data)
}

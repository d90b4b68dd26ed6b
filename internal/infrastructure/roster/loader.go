package roster

import (
	"embed"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"ravensbot/internal/domain/entities"
	"ravensbot/internal/ports/output"
)

// birthdayLayout pins the roster date format: day-month-year.
const birthdayLayout = "02-01-2006"

//go:embed roster.toml
var embeddedFS embed.FS

// Ensure Source implements the output.RosterSource port.
var _ output.RosterSource = (*Source)(nil)

// Source loads members from a TOML roster: the embedded default, or the file
// at path when one is configured. Records with malformed dates are logged and
// skipped, never fatal.
type Source struct {
	path string
	loc  *time.Location
}

func NewSource(path string, loc *time.Location) *Source {
	return &Source{path: path, loc: loc}
}

type rosterFile struct {
	Members []memberRecord `toml:"members"`
}

type memberRecord struct {
	Name     string `toml:"name"`
	Birthday string `toml:"birthday"`
}

// Load reads and parses the roster once.
func (s *Source) Load() ([]entities.Member, error) {
	data, err := s.read()
	if err != nil {
		return nil, err
	}

	var file rosterFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("roster: parse: %w", err)
	}

	members := make([]entities.Member, 0, len(file.Members))
	for _, rec := range file.Members {
		if rec.Birthday == "" {
			continue
		}
		birthday, err := time.ParseInLocation(birthdayLayout, rec.Birthday, s.loc)
		if err != nil {
			log.Printf("⚠️ roster: skipping %q: bad birthday %q: %v", rec.Name, rec.Birthday, err)
			continue
		}
		members = append(members, entities.Member{Name: rec.Name, Birthday: birthday})
	}
	return members, nil
}

func (s *Source) read() ([]byte, error) {
	if s.path != "" {
		data, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("roster: read %s: %w", s.path, err)
		}
		return data, nil
	}
	return embeddedFS.ReadFile("roster.toml")
}

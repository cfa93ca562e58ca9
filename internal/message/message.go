// Package message decodes the newline delimited JSON messages fed into the processor.
package message

import (
	"encoding/json"
	"fmt"

	"github.com/utakatalp/football-statistics/internal/errs"
	"github.com/utakatalp/football-statistics/internal/league"
)

const (
	TypeResult        = "RESULT"
	TypeGetStatistics = "GET_STATISTICS"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindResult
	KindGetStatistics
)

// Message is one decoded line. Only the field matching Kind is populated.
type Message struct {
	Kind   Kind
	Type   string
	Result league.Result
	Teams  []string
}

// object holds one JSON object level. Keys are matched exactly, unlike struct
// tags which encoding/json matches case insensitively.
type object map[string]json.RawMessage

func decodeObject(raw []byte, path string) (object, error) {
	var obj object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errs.ErrMalformedMessage, path, err)
	}

	return obj, nil
}

// field unmarshals the value under key into dst. A missing key and a null value
// are both reported as missing.
func (o object) field(key, path string, dst any) error {
	raw, ok := o[key]
	if !ok || isAbsent(raw) {
		return fmt.Errorf("%w: missing %s", errs.ErrMalformedMessage, path)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s: %w", errs.ErrMalformedMessage, path, err)
	}

	return nil
}

// Decode parses a raw message. Every failure wraps errs.ErrMalformedMessage.
// A well formed message with an unrecognised type decodes to KindUnknown.
func Decode(raw string) (Message, error) {
	env, err := decodeObject([]byte(raw), "message")
	if err != nil {
		return Message{}, err
	}

	var msg Message
	if err := env.field("type", "type", &msg.Type); err != nil {
		return Message{}, err
	}

	switch msg.Type {
	case TypeResult:
		result, err := decodeResult(env["result"])
		if err != nil {
			return Message{}, err
		}
		msg.Kind = KindResult
		msg.Result = result
	case TypeGetStatistics:
		teams, err := decodeStatistics(env["get_statistics"])
		if err != nil {
			return Message{}, err
		}
		msg.Kind = KindGetStatistics
		msg.Teams = teams
	default:
		msg.Kind = KindUnknown
	}

	return msg, nil
}

func decodeResult(raw json.RawMessage) (league.Result, error) {
	if isAbsent(raw) {
		return league.Result{}, fmt.Errorf("%w: missing result", errs.ErrMalformedMessage)
	}

	body, err := decodeObject(raw, "result")
	if err != nil {
		return league.Result{}, err
	}

	var result league.Result
	for _, f := range []struct {
		key string
		dst any
	}{
		{"home_team", &result.HomeTeam},
		{"away_team", &result.AwayTeam},
		{"home_score", &result.HomeScore},
		{"away_score", &result.AwayScore},
	} {
		if err := body.field(f.key, "result."+f.key, f.dst); err != nil {
			return league.Result{}, err
		}
	}

	if result.HomeScore < 0 || result.AwayScore < 0 {
		return league.Result{}, fmt.Errorf("%w: negative score %d-%d",
			errs.ErrMalformedMessage, result.HomeScore, result.AwayScore)
	}

	return result, nil
}

func decodeStatistics(raw json.RawMessage) ([]string, error) {
	if isAbsent(raw) {
		return nil, fmt.Errorf("%w: missing get_statistics", errs.ErrMalformedMessage)
	}

	body, err := decodeObject(raw, "get_statistics")
	if err != nil {
		return nil, err
	}

	var names []json.RawMessage
	if err := body.field("teams", "get_statistics.teams", &names); err != nil {
		return nil, err
	}

	teams := make([]string, 0, len(names))
	for i, name := range names {
		if isAbsent(name) {
			return nil, fmt.Errorf("%w: get_statistics.teams[%d] is null", errs.ErrMalformedMessage, i)
		}

		var team string
		if err := json.Unmarshal(name, &team); err != nil {
			return nil, fmt.Errorf("%w: get_statistics.teams[%d]: %w", errs.ErrMalformedMessage, i, err)
		}
		teams = append(teams, team)
	}

	return teams, nil
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

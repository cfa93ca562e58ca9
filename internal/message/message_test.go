package message_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/utakatalp/football-statistics/internal/errs"
	"github.com/utakatalp/football-statistics/internal/league"
	"github.com/utakatalp/football-statistics/internal/message"
)

func TestDecodeResult(t *testing.T) {
	msg, err := message.Decode(`{"type":"RESULT","result":{"home_team":"A","away_team":"B","home_score":2,"away_score":1}}`)
	require.NoError(t, err)
	require.Equal(t, message.KindResult, msg.Kind)
	require.Equal(t, league.Result{HomeTeam: "A", AwayTeam: "B", HomeScore: 2, AwayScore: 1}, msg.Result)
}

func TestDecodeGetStatistics(t *testing.T) {
	msg, err := message.Decode(`{"type":"GET_STATISTICS","get_statistics":{"teams":["B","A","B"]}}`)
	require.NoError(t, err)
	require.Equal(t, message.KindGetStatistics, msg.Kind)
	require.Equal(t, []string{"B", "A", "B"}, msg.Teams)

	msg, err = message.Decode(`{"type":"GET_STATISTICS","get_statistics":{"teams":[]}}`)
	require.NoError(t, err)
	require.Empty(t, msg.Teams)
}

func TestDecodeUnknownType(t *testing.T) {
	msg, err := message.Decode(`{"type":"FIXTURE","fixture":{}}`)
	require.NoError(t, err)
	require.Equal(t, message.KindUnknown, msg.Kind)
	require.Equal(t, "FIXTURE", msg.Type)

	// type values are case sensitive
	msg, err = message.Decode(`{"type":"result"}`)
	require.NoError(t, err)
	require.Equal(t, message.KindUnknown, msg.Kind)
}

func TestDecodeExactKeys(t *testing.T) {
	// a key differing only in case is a different key and must not override the real one
	msg, err := message.Decode(`{"type":"RESULT","result":{"home_team":"A","HOME_TEAM":"Z","away_team":"B","home_score":2,"HOME_SCORE":9,"away_score":1}}`)
	require.NoError(t, err)
	require.Equal(t, league.Result{HomeTeam: "A", AwayTeam: "B", HomeScore: 2, AwayScore: 1}, msg.Result)

	msg, err = message.Decode(`{"TYPE":"FIXTURE","type":"GET_STATISTICS","get_statistics":{"teams":["A"],"TEAMS":["Z"]}}`)
	require.NoError(t, err)
	require.Equal(t, message.KindGetStatistics, msg.Kind)
	require.Equal(t, []string{"A"}, msg.Teams)
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ``},
		{"not json", `hello`},
		{"truncated", `{"type":"RESULT"`},
		{"array", `["RESULT"]`},
		{"missing type", `{"result":{}}`},
		{"null type", `{"type":null}`},
		{"numeric type", `{"type":1}`},
		{"missing result", `{"type":"RESULT"}`},
		{"null result", `{"type":"RESULT","result":null}`},
		{"result not object", `{"type":"RESULT","result":"A 2-1 B"}`},
		{"missing home team", `{"type":"RESULT","result":{"away_team":"B","home_score":2,"away_score":1}}`},
		{"missing away team", `{"type":"RESULT","result":{"home_team":"A","home_score":2,"away_score":1}}`},
		{"missing home score", `{"type":"RESULT","result":{"home_team":"A","away_team":"B","away_score":1}}`},
		{"missing away score", `{"type":"RESULT","result":{"home_team":"A","away_team":"B","home_score":2}}`},
		{"string score", `{"type":"RESULT","result":{"home_team":"A","away_team":"B","home_score":"2","away_score":1}}`},
		{"fractional score", `{"type":"RESULT","result":{"home_team":"A","away_team":"B","home_score":2.5,"away_score":1}}`},
		{"negative score", `{"type":"RESULT","result":{"home_team":"A","away_team":"B","home_score":-1,"away_score":1}}`},
		{"numeric team", `{"type":"RESULT","result":{"home_team":7,"away_team":"B","home_score":2,"away_score":1}}`},
		{"missing get_statistics", `{"type":"GET_STATISTICS"}`},
		{"missing teams", `{"type":"GET_STATISTICS","get_statistics":{}}`},
		{"teams not array", `{"type":"GET_STATISTICS","get_statistics":{"teams":"A"}}`},
		{"teams with number", `{"type":"GET_STATISTICS","get_statistics":{"teams":["A",1]}}`},
		{"teams with null", `{"type":"GET_STATISTICS","get_statistics":{"teams":["A",null]}}`},
		{"null message", `null`},
		{"upper case keys", `{"TYPE":"RESULT","Result":{"HOME_TEAM":"A","AWAY_TEAM":"B","HOME_SCORE":2,"AWAY_SCORE":1}}`},
		{"upper case result key", `{"type":"RESULT","RESULT":{"home_team":"A","away_team":"B","home_score":2,"away_score":1}}`},
		{"upper case home team", `{"type":"RESULT","result":{"HOME_TEAM":"A","away_team":"B","home_score":2,"away_score":1}}`},
		{"upper case score", `{"type":"RESULT","result":{"home_team":"A","away_team":"B","Home_Score":2,"away_score":1}}`},
		{"upper case teams", `{"type":"GET_STATISTICS","get_statistics":{"Teams":["A"]}}`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := message.Decode(test.raw)
			require.ErrorIs(t, err, errs.ErrMalformedMessage)
		})
	}
}

package ffcalc

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesexley/fantasy-football-go/internal/model"
	"github.com/jamesexley/fantasy-football-go/internal/testutils"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)
	return l
}

func TestFetchADP(t *testing.T) {
	fake := testutils.NewFakeADPServer()
	defer fake.Close()

	c := NewWithURL(fake.URL(), testLogger())
	lookup, err := c.FetchADP(context.Background(), FormatPPR, 12, 2025)
	require.NoError(t, err)
	require.Len(t, lookup, 4)

	cmc := lookup["christian_mccaffrey"]
	assert.Equal(t, 1.2, cmc.ADPOverall)
	assert.Equal(t, 1, cmc.PositionRank)
	assert.Equal(t, model.PosRB, cmc.Position)
	assert.Equal(t, "SF", cmc.Team)

	// Suffixes come off in the lookup key.
	_, ok := lookup["deebo_samuel"]
	assert.True(t, ok, "Deebo Samuel Sr. should key as deebo_samuel")

	// Query parameters travel as the API expects.
	assert.Equal(t, "ppr", fake.LastFormat)
	assert.Equal(t, "12", fake.LastQuery["teams"])
	assert.Equal(t, "2025", fake.LastQuery["year"])
	assert.Equal(t, "ppr", fake.LastQuery["format"])
}

func TestFetchADPUpstreamError(t *testing.T) {
	failing := testutils.NewFailingServer()
	defer failing.Close()

	c := NewWithURL(failing.URL, testLogger())
	_, err := c.FetchADP(context.Background(), FormatStandard, 12, 2025)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code")
}

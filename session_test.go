package multitouch

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/multitouch/internal/errors"
	"github.com/akeil/multitouch/pkg/affine"
)

func TestSessionAppliesEveryEvent(t *testing.T) {
	var applied []affine.Matrix
	sink := SinkFunc(func(m affine.Matrix) error {
		applied = append(applied, m)
		return nil
	})

	s := NewSession(DefaultThresholds(), sink)
	events := []Event{
		{Kind: ContactBegin},
		{Kind: SecondContactBegin, Points: []Point{Pt(0, 0), Pt(100, 0)}},
		{Kind: Move, Points: []Point{Pt(60, 0), Pt(160, 0)}},
		{Kind: ContactEnd, Remaining: 1},
		{Kind: ContactEnd, Remaining: 0},
	}
	err := s.Replay(events)
	require.NoError(t, err)

	require.Len(t, applied, len(events))
	assert.True(t, applied[1].IsIdentity())
	assert.True(t, applied[2].Equal(affine.Translation(60, 0), tolerance))
	assert.Equal(t, applied[2], applied[4])
	assert.Equal(t, None, s.Transformer().Mode())
}

func TestSessionWithoutSink(t *testing.T) {
	s := NewSession(DefaultThresholds(), nil)
	err := s.Handle(Event{Kind: ContactBegin})
	assert.NoError(t, err)
}

func TestReplayStopsAtError(t *testing.T) {
	calls := 0
	sink := SinkFunc(func(m affine.Matrix) error {
		calls++
		if calls == 2 {
			return fmt.Errorf("display gone")
		}
		return nil
	})

	s := NewSession(DefaultThresholds(), sink)
	events := []Event{
		{Kind: ContactBegin},
		{Kind: ContactBegin},
		{Kind: ContactBegin},
	}
	err := s.Replay(events)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "event 1 (contact-begin)"), err.Error())
	assert.Equal(t, 2, calls)
}

func TestReplayRejectsInvalidEvent(t *testing.T) {
	s := NewSession(DefaultThresholds(), nil)
	err := s.Replay([]Event{
		{Kind: ContactBegin},
		{Kind: SecondContactBegin},
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

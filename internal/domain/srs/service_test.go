package srs

import (
	"errors"
	"testing"
	"time"
)

func TestServiceCalculateNextReview(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	now := time.Now().UTC()

	state := testState(2.5, 0, 0)
	newState, err := svc.CalculateNextReview(state, 4, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if newState.Repetitions != 1 {
		t.Errorf("Expected repetitions 1, got %d", newState.Repetitions)
	}
}

func TestServiceNilState(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	_, err := svc.CalculateNextReview(nil, 4, time.Now().UTC())
	if !errors.Is(err, ErrNilState) {
		t.Errorf("Expected ErrNilState, got %v", err)
	}
}

func TestServiceWithCustomParams(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()
	params.SecondInterval = 4
	svc := NewServiceWithParams(params)
	now := time.Now().UTC()

	state := testState(2.5, 1, 1)
	newState, err := svc.CalculateNextReview(state, 4, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if newState.IntervalDays != 4 {
		t.Errorf("Expected custom second interval 4, got %d", newState.IntervalDays)
	}
}

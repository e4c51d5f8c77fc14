package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestClampQuality(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    int
		expected int
	}{
		{-5, 0},
		{0, 0},
		{3, 3},
		{5, 5},
		{9, 5},
	}

	for _, tc := range testCases {
		if got := ClampQuality(tc.input); got != tc.expected {
			t.Errorf("ClampQuality(%d): expected %d, got %d", tc.input, tc.expected, got)
		}
	}
}

func TestStudyModeValidate(t *testing.T) {
	t.Parallel()

	for _, mode := range []StudyMode{StudyModeFlashcard, StudyModeMultipleChoice, StudyModeTyping} {
		if err := mode.Validate(); err != nil {
			t.Errorf("Expected mode %q to be valid, got %v", mode, err)
		}
	}

	if err := StudyMode("cramming").Validate(); err != ErrInvalidStudyMode {
		t.Errorf("Expected ErrInvalidStudyMode, got %v", err)
	}
}

func TestNewSessionRecord(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	wordID := uuid.New()
	collectionID := uuid.New()

	testCases := []struct {
		name            string
		quality         int
		expectedCorrect bool
		expectedStored  int
	}{
		{"again stores as 1 and is incorrect", 0, false, 1},
		{"hard is correct", 3, true, 3},
		{"good is correct", 4, true, 4},
		{"easy is correct", 5, true, 5},
		{"overflow clamps to 5", 7, true, 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := NewSessionRecord(wordID, collectionID, tc.quality, StudyModeFlashcard, now)

			if rec.Correct != tc.expectedCorrect {
				t.Errorf("Expected correct=%v, got %v", tc.expectedCorrect, rec.Correct)
			}
			if rec.Quality != tc.expectedStored {
				t.Errorf("Expected stored quality %d, got %d", tc.expectedStored, rec.Quality)
			}
			if rec.Mode != StudyModeFlashcard {
				t.Errorf("Expected mode flashcard, got %q", rec.Mode)
			}
		})
	}
}

func TestMetadataFirstExample(t *testing.T) {
	t.Parallel()

	var nilMeta *WordMetadata
	if nilMeta.FirstExample() != "" {
		t.Error("Expected empty hint from nil metadata")
	}

	meta := &WordMetadata{
		Examples: []WordExample{
			{ExampleText: ""},
			{ExampleText: "I run every morning."},
		},
	}
	if got := meta.FirstExample(); got != "I run every morning." {
		t.Errorf("Expected first non-empty example, got %q", got)
	}
}

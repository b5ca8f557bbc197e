package instruct_test

import (
	"testing"

	"cleanify/internal/classify"
	"cleanify/internal/config"
	"cleanify/internal/errors"
	"cleanify/internal/instruct"
	"cleanify/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScreenshotsRoundTrip(t *testing.T) {
	rule, err := instruct.Parse("move all screenshots to Screenshots")
	require.NoError(t, err)

	assert.Equal(t, "Screenshots", rule.Destination)
	assert.NoError(t, config.ValidateRule(rule), "parsed rules must satisfy store invariants")

	file := types.NewFileRecord("/desk/Screenshot 1.png", 10)
	assert.True(t, classify.Matches(file, rule), "the parsed rule must match 'Screenshot 1.png'")
}

func TestParseKeywordSubject(t *testing.T) {
	rule, err := instruct.Parse("put simulator files in my sim folder")
	require.NoError(t, err)

	assert.Equal(t, "sim", rule.Destination, "possessive and filler words are stripped")
	assert.Equal(t, []string{"simulator"}, rule.Match.Contains)
	assert.Empty(t, rule.Match.Extensions)
}

func TestParseCategorySubject(t *testing.T) {
	rule, err := instruct.Parse("send images to Pictures")
	require.NoError(t, err)

	assert.Equal(t, "Pictures", rule.Destination)
	assert.Empty(t, rule.Match.Contains)
	assert.Contains(t, rule.Match.Extensions, ".png")
	assert.Contains(t, rule.Match.Extensions, ".jpg")
	assert.Contains(t, rule.Match.Extensions, ".jpeg")

	t.Run("synonyms resolve to the same set", func(t *testing.T) {
		photos, err := instruct.Parse("move my photos to Pictures")
		require.NoError(t, err)
		assert.Equal(t, rule.Match.Extensions, photos.Match.Extensions)
	})
}

func TestParseExplicitExtension(t *testing.T) {
	rule, err := instruct.Parse("move pdfs to Documents")
	require.NoError(t, err)
	assert.Equal(t, []string{".pdf"}, rule.Match.Extensions)

	t.Run("dotted form", func(t *testing.T) {
		rule, err := instruct.Parse("move .png files into Images")
		require.NoError(t, err)
		assert.Equal(t, []string{".png"}, rule.Match.Extensions)
		assert.Equal(t, "Images", rule.Destination)
	})
}

func TestParseCategoryPlusKeywordOverConstrains(t *testing.T) {
	// A category and an unrelated keyword combine as an AND. The resulting
	// rule may match nothing — that is accepted behavior, not a bug.
	rule, err := instruct.Parse("move invoice images to Billing")
	require.NoError(t, err)

	assert.Equal(t, []string{"invoice"}, rule.Match.Contains)
	assert.Contains(t, rule.Match.Extensions, ".png")
	assert.Equal(t, "Billing", rule.Destination)

	pdf := types.NewFileRecord("/desk/invoice.pdf", 10)
	assert.False(t, classify.Matches(pdf, rule), "keyword alone is not enough")
	photo := types.NewFileRecord("/desk/holiday.png", 10)
	assert.False(t, classify.Matches(photo, rule), "category alone is not enough")
	both := types.NewFileRecord("/desk/invoice-scan.png", 10)
	assert.True(t, classify.Matches(both, rule))
}

func TestParseDestinationPhrases(t *testing.T) {
	cases := map[string]struct {
		instruction string
		destination string
	}{
		"to":                {"move reports to Reports", "Reports"},
		"into":              {"move reports into Reports", "Reports"},
		"in my ... folder":  {"put reports in my work folder", "work"},
		"new folder called": {"move reports into a new folder called Archive 2024", "Archive 2024"},
		"last preposition":  {"take everything with invoice in the name to Billing", "Billing"},
		"case preserved":    {"move reports to ProjectDocs", "ProjectDocs"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rule, err := instruct.Parse(tc.instruction)
			require.NoError(t, err)
			assert.Equal(t, tc.destination, rule.Destination)
		})
	}
}

func TestParseNormalizesSpacing(t *testing.T) {
	rule, err := instruct.Parse("  MOVE   all   Screenshots    TO   Shots  ")
	require.NoError(t, err)
	assert.Equal(t, "Shots", rule.Destination)
	assert.Equal(t, []string{"screenshot"}, rule.Match.Contains)
}

func TestParseFailures(t *testing.T) {
	t.Run("no recognizable anything", func(t *testing.T) {
		_, err := instruct.Parse("hello there")
		require.Error(t, err)
		assert.True(t, errors.IsParseError(err))

		var parseErr *errors.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "verb", parseErr.MissingElement())
	})

	t.Run("missing destination", func(t *testing.T) {
		_, err := instruct.Parse("move all screenshots")
		var parseErr *errors.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "destination", parseErr.MissingElement())
	})

	t.Run("missing subject", func(t *testing.T) {
		_, err := instruct.Parse("move all files to Somewhere")
		var parseErr *errors.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "subject", parseErr.MissingElement())
	})

	t.Run("empty instruction", func(t *testing.T) {
		_, err := instruct.Parse("")
		assert.True(t, errors.IsParseError(err))
	})

	t.Run("escaping destination rejected", func(t *testing.T) {
		_, err := instruct.Parse("move screenshots to ../outside")
		var parseErr *errors.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "destination", parseErr.MissingElement())
	})
}

func TestParseGeneratedName(t *testing.T) {
	rule, err := instruct.Parse("move all screenshots to Screenshots")
	require.NoError(t, err)
	assert.Equal(t, "Screenshots", rule.Name, "name derives from the destination")
}

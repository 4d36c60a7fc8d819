package gemini_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stevenrichter16/mypoem"
	"github.com/stevenrichter16/mypoem/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrafter_Draft_ReturnsPoemText(t *testing.T) {
	t.Parallel()

	mockClient := &gemini.MockGenerativeClient{
		GenerateContentFn: func(ctx context.Context, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
			assert.Equal(t, gemini.DefaultModel, model)
			require.Len(t, contents, 1)
			require.NotNil(t, config.SystemInstruction)
			return &gemini.GenerateContentResponse{Text: "roses are red\nviolets are blue"}, nil
		},
	}

	drafter := gemini.NewDrafter(mockClient, gemini.DefaultModel)

	draft, err := drafter.Draft(context.Background(), mypoem.DraftRequest{Subject: "flowers"})

	require.NoError(t, err)
	assert.Equal(t, "roses are red\nviolets are blue\n", draft, "draft gains a trailing newline")
}

func TestDrafter_Draft_RevisionIncludesPreviousDraft(t *testing.T) {
	t.Parallel()

	previous := "the moon rises\n"
	var prompt string

	mockClient := &gemini.MockGenerativeClient{
		GenerateContentFn: func(ctx context.Context, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
			prompt = contents[0].Parts[0].Text
			return &gemini.GenerateContentResponse{Text: "the pale moon rises"}, nil
		},
	}

	drafter := gemini.NewDrafter(mockClient, gemini.DefaultModel)

	_, err := drafter.Draft(context.Background(), mypoem.DraftRequest{
		Subject:  "the moon",
		Previous: previous,
	})

	require.NoError(t, err)
	assert.Contains(t, prompt, previous, "prompt should carry the previous draft")
	assert.Contains(t, prompt, "Revise")
}

func TestDrafter_Draft_PropagatesClientError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	mockClient := &gemini.MockGenerativeClient{
		GenerateContentFn: func(ctx context.Context, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
			return nil, wantErr
		},
	}

	drafter := gemini.NewDrafter(mockClient, gemini.DefaultModel)

	_, err := drafter.Draft(context.Background(), mypoem.DraftRequest{Subject: "rain"})

	assert.ErrorIs(t, err, wantErr)
}

func TestDrafter_Draft_RejectsEmptyResponse(t *testing.T) {
	t.Parallel()

	mockClient := &gemini.MockGenerativeClient{
		GenerateContentFn: func(ctx context.Context, model string, contents []*gemini.Content, config *gemini.GenerateContentConfig) (*gemini.GenerateContentResponse, error) {
			return &gemini.GenerateContentResponse{Text: "   \n"}, nil
		},
	}

	drafter := gemini.NewDrafter(mockClient, gemini.DefaultModel)

	_, err := drafter.Draft(context.Background(), mypoem.DraftRequest{Subject: "rain"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty draft")
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	t.Run("first draft asks for a new poem", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildPrompt(mypoem.DraftRequest{Subject: "autumn"})

		assert.Contains(t, prompt, "Write a short poem")
		assert.Contains(t, prompt, "autumn")
	})

	t.Run("later drafts ask for a revision", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildPrompt(mypoem.DraftRequest{Subject: "autumn", Previous: "leaves fall\n"})

		assert.Contains(t, prompt, "Revise")
		assert.Contains(t, prompt, "leaves fall\n")
	})
}

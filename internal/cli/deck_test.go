package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_tinycards "github.com/at-ishikawa/tinycards/internal/mocks/tinycards"
	"github.com/at-ishikawa/tinycards/internal/model"
	"github.com/at-ishikawa/tinycards/internal/testutil"
	"github.com/at-ishikawa/tinycards/internal/tinycards"
)

func newDeckWithCards(id, title string, pairs ...[2]string) *model.Deck {
	deck := model.NewDeck(title)
	deck.ID = id
	deck.UserID = 123
	for _, pair := range pairs {
		deck.Cards = append(deck.Cards, model.NewCardFromText(pair[0], pair[1], deck.UserID))
	}
	return deck
}

func TestTinycardsCLI_ListDecks(t *testing.T) {
	spanish := &model.Deck{ID: "deck-1", Title: "Spanish", Description: "Basic words"}
	french := &model.Deck{ID: "deck-2", Title: "French", Description: "Verbs"}

	tests := []struct {
		name       string
		decks      []*model.Deck
		wantOutput string
	}{
		{
			name:  "Lists decks without cards",
			decks: []*model.Deck{spanish, french},
			wantOutput: "ID      TITLE    DESCRIPTION\n" +
				"deck-1  Spanish  Basic words\n" +
				"deck-2  French   Verbs\n",
		},
		{
			name:       "No decks",
			decks:      []*model.Deck{},
			wantOutput: "No decks\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, api, _, buf := newTestCLI(t)
			api.EXPECT().GetDecks(gomock.Any()).Return(tt.decks, nil)

			require.NoError(t, cli.ListDecks(context.Background()))
			assert.Equal(t, tt.wantOutput, buf.String())
		})
	}
}

func TestTinycardsCLI_CreateDeck(t *testing.T) {
	t.Run("Creates a deck with cards of a CSV file", func(t *testing.T) {
		cli, api, _, buf := newTestCLI(t)
		csvPath := testutil.CreateCardsCSV(t, t.TempDir(), [2]string{"hola", "hello"}, [2]string{"gato", "cat"})

		api.EXPECT().Session().Return(tinycards.Session{Token: "token", UserID: 123}, nil)
		api.EXPECT().CreateDeck(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, deck *model.Deck, _ ...tinycards.DeckOption) (*model.Deck, error) {
				assert.Equal(t, "Spanish", deck.Title)
				assert.Equal(t, "Basic words", deck.Description)
				assert.Equal(t, "cover.png", deck.Cover)
				require.Len(t, deck.Cards, 2)
				assert.Equal(t, "gato", deck.Cards[1].Front.Text())
				assert.Equal(t, "cat", deck.Cards[1].Back.Text())
				assert.Equal(t, int64(123), deck.Cards[0].UserID)

				created := *deck
				created.ID = "deck-1"
				return &created, nil
			})

		err := cli.CreateDeck(context.Background(), CreateDeckInput{
			Title:       "Spanish",
			Description: "Basic words",
			CSVPath:     csvPath,
			Cover:       "cover.png",
		})
		require.NoError(t, err)
		assert.Equal(t, "Created the deck \"Spanish\" (deck-1) with 2 cards\n", buf.String())
	})

	t.Run("Not logged in", func(t *testing.T) {
		cli, api, _, _ := newTestCLI(t)
		api.EXPECT().Session().Return(tinycards.Session{}, tinycards.ErrNotLoggedIn)

		err := cli.CreateDeck(context.Background(), CreateDeckInput{Title: "Spanish"})
		assert.ErrorIs(t, err, tinycards.ErrNotLoggedIn)
	})

	t.Run("Invalid CSV header", func(t *testing.T) {
		cli, api, _, _ := newTestCLI(t)
		csvPath := filepath.Join(t.TempDir(), "cards.csv")
		require.NoError(t, os.WriteFile(csvPath, []byte("question,answer\nhola,hello\n"), 0644))
		api.EXPECT().Session().Return(tinycards.Session{UserID: 123}, nil)

		err := cli.CreateDeck(context.Background(), CreateDeckInput{Title: "Spanish", CSVPath: csvPath})
		assert.ErrorIs(t, err, model.ErrInvalidCSVHeader)
	})
}

func TestTinycardsCLI_ImportCards(t *testing.T) {
	cli, api, _, buf := newTestCLI(t)
	csvPath := testutil.CreateCardsCSV(t, t.TempDir(), [2]string{"gato", "cat"})
	existing := newDeckWithCards("deck-1", "Spanish", [2]string{"hola", "hello"})

	gomock.InOrder(
		api.EXPECT().FindDeckByTitle(gomock.Any(), "Spanish").Return(&model.Deck{ID: "deck-1", Title: "Spanish"}, nil),
		api.EXPECT().GetDeck(gomock.Any(), "deck-1", true).Return(existing, nil),
		api.EXPECT().UpdateDeck(gomock.Any(), existing, gomock.Any()).
			DoAndReturn(func(_ context.Context, deck *model.Deck, _ ...tinycards.DeckOption) (*model.Deck, error) {
				require.Len(t, deck.Cards, 2)
				assert.Equal(t, "hola", deck.Cards[0].Front.Text())
				assert.Equal(t, "gato", deck.Cards[1].Front.Text())
				return deck, nil
			}),
	)

	require.NoError(t, cli.ImportCards(context.Background(), "Spanish", csvPath))
	assert.Equal(t, "Imported 1 cards into the deck \"Spanish\", which has 2 cards now\n", buf.String())
}

func TestTinycardsCLI_ExportDeck(t *testing.T) {
	deck := newDeckWithCards("deck-1", "Spanish", [2]string{"hola", "hello"}, [2]string{"gato", "cat"})
	wantCSV := "front,back\r\nhola,hello\r\ngato,cat\r\n"

	t.Run("Writes CSV to the output without files", func(t *testing.T) {
		cli, api, _, buf := newTestCLI(t)
		api.EXPECT().FindDeckByTitle(gomock.Any(), "Spanish").Return(&model.Deck{ID: "deck-1", Title: "Spanish"}, nil)
		api.EXPECT().GetDeck(gomock.Any(), "deck-1", true).Return(deck, nil)

		require.NoError(t, cli.ExportDeck(context.Background(), ExportDeckInput{Title: "Spanish"}))
		assert.Equal(t, wantCSV, buf.String())
	})

	t.Run("Writes a CSV file", func(t *testing.T) {
		cli, api, _, buf := newTestCLI(t)
		api.EXPECT().FindDeckByTitle(gomock.Any(), "Spanish").Return(&model.Deck{ID: "deck-1", Title: "Spanish"}, nil)
		api.EXPECT().GetDeck(gomock.Any(), "deck-1", true).Return(deck, nil)
		csvPath := filepath.Join(t.TempDir(), "spanish.csv")

		require.NoError(t, cli.ExportDeck(context.Background(), ExportDeckInput{Title: "Spanish", CSVPath: csvPath}))
		got, err := os.ReadFile(csvPath)
		require.NoError(t, err)
		assert.Equal(t, wantCSV, string(got))
		assert.Equal(t, "Exported 2 cards to "+csvPath+"\n", buf.String())
	})

	t.Run("Deck not found", func(t *testing.T) {
		cli, api, _, _ := newTestCLI(t)
		api.EXPECT().FindDeckByTitle(gomock.Any(), "Missing").Return(nil, tinycards.ErrDeckNotFound)

		err := cli.ExportDeck(context.Background(), ExportDeckInput{Title: "Missing"})
		assert.ErrorIs(t, err, tinycards.ErrDeckNotFound)
	})
}

func TestTinycardsCLI_DeleteDeck(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(api *mock_tinycards.MockAPI)
		wantOutput string
		wantErr    error
	}{
		{
			name: "Deletes the deck with the title",
			setupMock: func(api *mock_tinycards.MockAPI) {
				api.EXPECT().FindDeckByTitle(gomock.Any(), "Spanish").Return(&model.Deck{ID: "deck-1", Title: "Spanish"}, nil)
				api.EXPECT().DeleteDeck(gomock.Any(), "deck-1").Return(&model.Deck{ID: "deck-1", Title: "Spanish"}, nil)
			},
			wantOutput: "Deleted the deck \"Spanish\" (deck-1)\n",
		},
		{
			name: "Ambiguous title",
			setupMock: func(api *mock_tinycards.MockAPI) {
				api.EXPECT().FindDeckByTitle(gomock.Any(), "Spanish").Return(nil, &tinycards.AmbiguousTitleError{
					Title:   "Spanish",
					DeckIDs: []string{"deck-1", "deck-2"},
				})
			},
			wantErr: tinycards.ErrAmbiguousTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, api, _, buf := newTestCLI(t)
			tt.setupMock(api)

			err := cli.DeleteDeck(context.Background(), "Spanish")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOutput, buf.String())
		})
	}
}

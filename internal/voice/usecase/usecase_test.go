package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "fridge-inventory/internal/inventory/repository"
	"fridge-inventory/internal/inventory/repository/sqlstore"
	"fridge-inventory/internal/model"
	"fridge-inventory/internal/voice"
	"fridge-inventory/internal/voice/codec"
	"fridge-inventory/pkg/log"
	"fridge-inventory/pkg/speech"
)

var alice = model.Scope{UserID: "alice"}

type fakeInterpreter struct {
	result voice.ParseResult
	err    error
	calls  int
	last   voice.InterpretInput
}

func (f *fakeInterpreter) Interpret(_ context.Context, input voice.InterpretInput) (voice.ParseResult, error) {
	f.calls++
	f.last = input
	return f.result, f.err
}

type fakeTranscriber struct {
	text string
	err  error
}

func (f fakeTranscriber) Transcribe(context.Context, speech.Request) (string, error) {
	return f.text, f.err
}

type fixture struct {
	repo   repo.Repository
	interp *fakeInterpreter
	uc     *implUseCase
	top    model.Shelf
	bottom model.Shelf
}

func newFixture(t *testing.T, locale string) *fixture {
	t.Helper()
	ctx := context.Background()

	db, err := sqlstore.Open(ctx, sqlstore.Config{
		Driver: sqlstore.DialectSQLite,
		DSN:    filepath.Join(t.TempDir(), "voice.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = sqlstore.Migrate(ctx, db, sqlstore.DialectSQLite)
	require.NoError(t, err)

	r := sqlstore.New(db, sqlstore.DialectSQLite, log.NewNop())

	freezer, err := r.CreateContainer(ctx, repo.CreateContainerOptions{UserID: alice.UserID, Name: "Freezer", Kind: model.ContainerKindFreezer})
	require.NoError(t, err)
	top, err := r.CreateShelf(ctx, repo.CreateShelfOptions{ContainerID: freezer.ID, Name: "Top", Position: 1})
	require.NoError(t, err)
	bottom, err := r.CreateShelf(ctx, repo.CreateShelfOptions{ContainerID: freezer.ID, Name: "Bottom", Position: 2})
	require.NoError(t, err)

	interp := &fakeInterpreter{}
	return &fixture{
		repo:   r,
		interp: interp,
		uc:     New(log.NewNop(), r, interp, nil, nil, locale),
		top:    top,
		bottom: bottom,
	}
}

func (f *fixture) seed(t *testing.T, shelf model.Shelf, name string, quantity int) {
	t.Helper()
	_, err := f.repo.CreateItem(context.Background(), repo.CreateItemOptions{ShelfID: shelf.ID, Name: name, Quantity: quantity})
	require.NoError(t, err)
}

func (f *fixture) quantity(t *testing.T, shelf model.Shelf, name string) int {
	t.Helper()
	item, err := f.repo.FindItemOnShelf(context.Background(), shelf.ID, name)
	require.NoError(t, err)
	return item.Quantity
}

func (f *fixture) run(t *testing.T, actions ...voice.ParsedAction) voice.CommandOutput {
	t.Helper()
	f.interp.result = voice.ParseResult{Actions: actions}
	out, err := f.uc.ProcessCommand(context.Background(), alice, voice.CommandInput{Text: "polecenie"})
	require.NoError(t, err)
	return out
}

func add(name string, quantity, shelf int) voice.ParsedAction {
	return voice.ParsedAction{Type: voice.ActionAddItem, ItemName: name, Quantity: quantity, ShelfID: shelf}
}

func TestProcessCommand_AddToShelf(t *testing.T) {
	f := newFixture(t, LocaleEN)

	out := f.run(t, add("milk", 2, 1))

	assert.True(t, out.Success)
	assert.Equal(t, "Added 2 milk to Top in Freezer", out.Message)
	require.Len(t, out.Actions, 1)
	assert.Equal(t, voice.StatusSuccess, out.Actions[0].Status)
	assert.Equal(t, 2, out.Actions[0].ResultQuantity)
	assert.Equal(t, 2, f.quantity(t, f.top, "milk"))

	assert.Equal(t, 1, f.interp.calls)
	assert.Equal(t, "polecenie", f.interp.last.Text)
	assert.Contains(t, f.interp.last.Context, `"name":"Top"`)
	assert.Equal(t, 0, f.interp.last.DefaultShelfID)
}

func TestProcessCommand_AddMergesSameName(t *testing.T) {
	f := newFixture(t, LocaleEN)

	f.run(t, add("milk", 2, 1))
	out := f.run(t, add("  milk ", 3, 1))

	assert.True(t, out.Success)
	assert.Equal(t, 5, out.Actions[0].ResultQuantity)

	items, err := f.repo.ListItems(context.Background(), f.top.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestProcessCommand_RemoveSurplusDeletes(t *testing.T) {
	f := newFixture(t, LocaleEN)
	f.seed(t, f.top, "milk", 2)

	out := f.run(t, voice.ParsedAction{Type: voice.ActionRemoveItem, ItemName: "milk", Quantity: 5, ShelfID: 1})

	assert.True(t, out.Success)
	assert.Equal(t, "Removed 5 milk from Top in Freezer", out.Message)
	assert.Equal(t, 0, out.Actions[0].ResultQuantity)
	assert.Equal(t, 0, f.quantity(t, f.top, "milk"))
}

func TestProcessCommand_RemovePartial(t *testing.T) {
	f := newFixture(t, LocaleEN)
	f.seed(t, f.top, "milk", 4)

	out := f.run(t, voice.ParsedAction{Type: voice.ActionRemoveItem, ItemName: "milk", Quantity: 1, ShelfID: 1})

	assert.True(t, out.Success)
	assert.Equal(t, 3, out.Actions[0].ResultQuantity)
	assert.Equal(t, 3, f.quantity(t, f.top, "milk"))
}

func TestProcessCommand_Update(t *testing.T) {
	f := newFixture(t, LocaleEN)
	f.seed(t, f.top, "milk", 2)
	f.seed(t, f.top, "butter", 1)

	out := f.run(t,
		voice.ParsedAction{Type: voice.ActionUpdateItem, ItemName: "milk", Quantity: 7, ShelfID: 1},
		voice.ParsedAction{Type: voice.ActionUpdateItem, ItemName: "butter", Quantity: 0, ShelfID: 1},
	)

	assert.True(t, out.Success)
	assert.Equal(t, "Updated milk on Top in Freezer to 7. Updated butter on Top in Freezer to 0", out.Message)
	assert.Equal(t, 7, f.quantity(t, f.top, "milk"))
	assert.Equal(t, 0, f.quantity(t, f.top, "butter"))
}

func TestProcessCommand_PartialFailure(t *testing.T) {
	f := newFixture(t, LocaleEN)

	out := f.run(t, add("milk", 1, 1), add("ice", 1, 9), add("butter", 2, 2))

	assert.False(t, out.Success)
	require.Len(t, out.Actions, 3)
	assert.Equal(t, voice.StatusSuccess, out.Actions[0].Status)
	assert.Equal(t, voice.StatusFailed, out.Actions[1].Status)
	assert.Equal(t, voice.ReasonShelfNotFound, out.Actions[1].Reason)
	assert.Equal(t, "ice", out.Actions[1].ItemName)
	assert.Equal(t, "unknown shelf", out.Actions[1].ShelfName)
	assert.Equal(t, "unknown container", out.Actions[1].ContainerName)
	assert.Equal(t, voice.StatusSuccess, out.Actions[2].Status)
	assert.Equal(t, "Added 1 milk to Top in Freezer. Added 2 butter to Bottom in Freezer", out.Message)

	assert.Equal(t, 1, f.quantity(t, f.top, "milk"))
	assert.Equal(t, 2, f.quantity(t, f.bottom, "butter"))
}

func TestProcessCommand_FailureReasons(t *testing.T) {
	f := newFixture(t, LocaleEN)

	tests := []struct {
		name   string
		action voice.ParsedAction
		want   voice.FailureReason
	}{
		{"no shelf and no default", add("milk", 1, 0), voice.ReasonShelfRequired},
		{"unknown shelf", add("milk", 1, 3), voice.ReasonShelfNotFound},
		{"zero add", add("milk", 0, 1), voice.ReasonInvalidQuantity},
		{"negative update", voice.ParsedAction{Type: voice.ActionUpdateItem, ItemName: "milk", Quantity: -1, ShelfID: 1}, voice.ReasonInvalidQuantity},
		{"blank name", add("   ", 1, 1), voice.ReasonInvalidItemName},
		{"remove missing", voice.ParsedAction{Type: voice.ActionRemoveItem, ItemName: "milk", Quantity: 1, ShelfID: 1}, voice.ReasonItemNotFound},
		{"unknown type", voice.ParsedAction{Type: "teleport_item", ItemName: "milk", Quantity: 1, ShelfID: 1}, voice.ReasonUnknownAction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := f.run(t, tt.action)

			assert.False(t, out.Success)
			require.Len(t, out.Actions, 1)
			assert.Equal(t, voice.StatusFailed, out.Actions[0].Status)
			assert.Equal(t, tt.want, out.Actions[0].Reason)
			assert.Equal(t, "Could not complete the command", out.Message)
		})
	}
}

func TestProcessCommand_RemoveIsCaseSensitive(t *testing.T) {
	f := newFixture(t, LocaleEN)
	f.seed(t, f.top, "Milk", 2)

	out := f.run(t, voice.ParsedAction{Type: voice.ActionRemoveItem, ItemName: "milk", Quantity: 1, ShelfID: 1})

	assert.Equal(t, voice.ReasonItemNotFound, out.Actions[0].Reason)
	assert.Equal(t, 2, f.quantity(t, f.top, "Milk"))
}

func TestProcessCommand_DefaultShelf(t *testing.T) {
	f := newFixture(t, LocaleEN)
	f.interp.result = voice.ParseResult{Actions: []voice.ParsedAction{add("peas", 1, 0)}}

	out, err := f.uc.ProcessCommand(context.Background(), alice, voice.CommandInput{Text: "dodaj groszek", DefaultShelfID: f.bottom.ID})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, "Added 1 peas to Bottom in Freezer", out.Message)
	assert.Equal(t, 2, f.interp.last.DefaultShelfID)
}

func TestProcessCommand_UnknownDefaultShelfIsIgnored(t *testing.T) {
	f := newFixture(t, LocaleEN)
	f.interp.result = voice.ParseResult{Actions: []voice.ParsedAction{add("peas", 1, 0)}}

	out, err := f.uc.ProcessCommand(context.Background(), alice, voice.CommandInput{Text: "dodaj groszek", DefaultShelfID: "gone"})
	require.NoError(t, err)

	assert.Equal(t, 0, f.interp.last.DefaultShelfID)
	assert.Equal(t, voice.ReasonShelfRequired, out.Actions[0].Reason)
}

func TestProcessCommand_ClarificationTakesPrecedence(t *testing.T) {
	f := newFixture(t, LocaleEN)
	f.interp.result = voice.ParseResult{
		Actions:               []voice.ParsedAction{add("milk", 2, 1)},
		Message:               "Which shelf?",
		NeedsClarification:    true,
		ClarificationQuestion: "Top or Bottom?",
	}

	out, err := f.uc.ProcessCommand(context.Background(), alice, voice.CommandInput{Text: "add milk"})
	require.NoError(t, err)

	assert.False(t, out.Success)
	assert.True(t, out.NeedsClarification)
	assert.Empty(t, out.Actions)
	assert.Equal(t, "Which shelf?", out.Message)
	assert.Equal(t, "Top or Bottom?", out.ClarificationQuestion)
	assert.Equal(t, 0, f.quantity(t, f.top, "milk"))
}

func TestProcessCommand_MalformedFallsBack(t *testing.T) {
	f := newFixture(t, LocaleEN)
	f.interp.err = voice.ErrMalformedInterpretation

	out, err := f.uc.ProcessCommand(context.Background(), alice, voice.CommandInput{Text: "???"})
	require.NoError(t, err)

	assert.False(t, out.Success)
	assert.True(t, out.NeedsClarification)
	assert.Empty(t, out.Actions)
	assert.Equal(t, "I could not understand the command", out.Message)
	assert.Equal(t, "Could you repeat what exactly you want me to do?", out.ClarificationQuestion)
}

func TestProcessCommand_NoActions(t *testing.T) {
	f := newFixture(t, LocaleEN)
	f.interp.result = voice.ParseResult{Message: "Nothing to do here"}

	out, err := f.uc.ProcessCommand(context.Background(), alice, voice.CommandInput{Text: "hello"})
	require.NoError(t, err)

	assert.False(t, out.Success)
	assert.False(t, out.NeedsClarification)
	assert.Equal(t, "Nothing to do here", out.Message)
}

func TestProcessCommand_InterpreterErrorsPropagate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"rate limited", voice.ErrInterpreterRateLimited, voice.ErrInterpreterRateLimited},
		{"unavailable", voice.ErrInterpreterUnavailable, voice.ErrInterpreterUnavailable},
		{"other", errors.New("connection reset"), voice.ErrInterpreterUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, LocaleEN)
			f.interp.err = tt.err

			_, err := f.uc.ProcessCommand(context.Background(), alice, voice.CommandInput{Text: "add milk"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestProcessCommand_EmptyText(t *testing.T) {
	f := newFixture(t, LocaleEN)

	_, err := f.uc.ProcessCommand(context.Background(), alice, voice.CommandInput{Text: "   "})
	assert.ErrorIs(t, err, voice.ErrEmptyCommand)
	assert.Equal(t, 0, f.interp.calls)
}

func TestProcessCommand_InfoUsesInterpreterMessageOnce(t *testing.T) {
	f := newFixture(t, LocaleEN)
	f.interp.result = voice.ParseResult{
		Actions: []voice.ParsedAction{
			{Type: voice.ActionInfo},
			add("milk", 1, 1),
			{Type: voice.ActionInfo},
		},
		Message: "You have no fish",
	}

	out, err := f.uc.ProcessCommand(context.Background(), alice, voice.CommandInput{Text: "ryba?"})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, "You have no fish. Added 1 milk to Top in Freezer", out.Message)
}

func TestProcessCommand_PolishDefault(t *testing.T) {
	f := newFixture(t, "")

	out := f.run(t, add("mleko", 2, 1))

	assert.Equal(t, "Dodano 2 mleko na półkę Top w Freezer", out.Message)
}

func TestProcessQuery_Aggregates(t *testing.T) {
	f := newFixture(t, LocaleEN)
	f.seed(t, f.top, "mleko", 2)
	f.seed(t, f.bottom, "mleko", 3)
	f.seed(t, f.bottom, "masło", 1)

	out, err := f.uc.ProcessQuery(context.Background(), alice, voice.QueryInput{Term: "mleko"})
	require.NoError(t, err)

	assert.True(t, out.Found)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "mleko", out.Items[0].Name)
	assert.Equal(t, 5, out.Items[0].TotalQuantity)
	assert.Equal(t, []voice.ItemLocation{
		{ShelfName: "Top", ContainerName: "Freezer", ShelfPosition: 1},
		{ShelfName: "Bottom", ContainerName: "Freezer", ShelfPosition: 2},
	}, out.Items[0].Locations)
	assert.Equal(t, "You have 5 mleko in 2 places", out.Message)
}

func TestProcessQuery_Messages(t *testing.T) {
	f := newFixture(t, LocaleEN)
	f.seed(t, f.top, "milk", 2)
	f.seed(t, f.top, "milk chocolate", 1)
	f.seed(t, f.bottom, "peas", 4)

	tests := []struct {
		term  string
		found bool
		want  string
	}{
		{"peas", true, "You have 4 peas on Bottom in Freezer"},
		{"milk", true, "Found 2 different items"},
		{"fish", false, "Nothing found for: fish"},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			out, err := f.uc.ProcessQuery(context.Background(), alice, voice.QueryInput{Term: tt.term})
			require.NoError(t, err)
			assert.Equal(t, tt.found, out.Found)
			assert.Equal(t, tt.want, out.Message)
		})
	}

	_, err := f.uc.ProcessQuery(context.Background(), alice, voice.QueryInput{Term: " "})
	assert.ErrorIs(t, err, voice.ErrEmptyQuery)
}

func TestAggregate_CaseInsensitiveAndDeduplicated(t *testing.T) {
	rows := []model.ItemWithLocation{
		{Item: model.Item{Name: "Mleko", Quantity: 1}, ShelfName: "Top", ContainerName: "Lodówka", ShelfPosition: 1},
		{Item: model.Item{Name: "mleko ", Quantity: 2}, ShelfName: "Top", ContainerName: "Lodówka", ShelfPosition: 1},
		{Item: model.Item{Name: "MLEKO", Quantity: 4}, ShelfName: "Top", ContainerName: "Zamrażarka", ShelfPosition: 1},
	}

	items := aggregate(rows)

	require.Len(t, items, 1)
	assert.Equal(t, "Mleko", items[0].Name)
	assert.Equal(t, 7, items[0].TotalQuantity)
	assert.Len(t, items[0].Locations, 2)
}

func TestBuildSnapshot(t *testing.T) {
	trees := []model.ContainerTree{
		{
			Container: model.Container{ID: "C1", Name: "Freezer", Kind: model.ContainerKindFreezer},
			Shelves: []model.ShelfWithItems{
				{Shelf: model.Shelf{ID: "S2", Name: "Bottom", Position: 2}},
				{Shelf: model.Shelf{ID: "S1", Name: "Top", Position: 1}, Items: []model.Item{
					{ID: "I1", Name: "milk", Quantity: 2},
					{ID: "I2", Name: "peas", Quantity: 1},
				}},
			},
		},
		{Container: model.Container{ID: "C2", Name: "Fridge", Kind: model.ContainerKindFridge}},
	}

	snap, err := buildSnapshot(trees, "S2")
	require.NoError(t, err)

	s1, err := snap.codec.Resolve(1, codec.Shelf)
	require.NoError(t, err)
	assert.Equal(t, "S1", s1)
	assert.Equal(t, 2, snap.defaultShelfID)
	assert.Equal(t, 2, snap.codec.Len(codec.Container))
	assert.Equal(t, 2, snap.codec.Len(codec.Item))

	assert.Equal(t,
		`{"containers":[`+
			`{"id":1,"name":"Freezer","kind":"freezer","shelves":[`+
			`{"id":1,"name":"Top","position":1,"items":[{"id":1,"name":"milk","quantity":2},{"id":2,"name":"peas","quantity":1}]},`+
			`{"id":2,"name":"Bottom","position":2,"items":[]}]},`+
			`{"id":2,"name":"Fridge","kind":"fridge","shelves":[]}]}`,
		snap.context)
	assert.False(t, strings.Contains(snap.context, "S1"))
}

func TestCompose_Empty(t *testing.T) {
	uc := New(log.NewNop(), nil, nil, nil, nil, LocaleEN)

	ok, msg := uc.compose(nil, "")
	assert.True(t, ok)
	assert.Equal(t, "Done", msg)
}

func TestTranscribe(t *testing.T) {
	ctx := context.Background()

	uc := New(log.NewNop(), nil, nil, nil, nil, LocalePL)
	_, err := uc.Transcribe(ctx, voice.TranscribeInput{Audio: []byte{1}})
	assert.ErrorIs(t, err, voice.ErrNoTranscriber)

	uc = New(log.NewNop(), nil, nil, fakeTranscriber{text: "  dodaj mleko "}, nil, LocalePL)
	_, err = uc.Transcribe(ctx, voice.TranscribeInput{})
	assert.ErrorIs(t, err, voice.ErrEmptyAudio)

	text, err := uc.Transcribe(ctx, voice.TranscribeInput{Audio: []byte{1}, MIMEType: "audio/ogg"})
	require.NoError(t, err)
	assert.Equal(t, "dodaj mleko", text)

	uc = New(log.NewNop(), nil, nil, fakeTranscriber{text: " "}, nil, LocalePL)
	_, err = uc.Transcribe(ctx, voice.TranscribeInput{Audio: []byte{1}})
	assert.ErrorIs(t, err, voice.ErrEmptyTranscript)
}

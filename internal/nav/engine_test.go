package nav

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittyfont/kittyfont/internal/application/port"
	"github.com/kittyfont/kittyfont/internal/application/resolver"
	"github.com/kittyfont/kittyfont/internal/application/usecase"
	"github.com/kittyfont/kittyfont/internal/config"
	"github.com/kittyfont/kittyfont/internal/domain/entity"
	"github.com/kittyfont/kittyfont/internal/logging"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}

type fakeHandle struct {
	id int
}

func (h *fakeHandle) PanelID() int { return h.id }

type fakeSurface struct {
	specs   []port.PanelSpec
	updates [][]string
	moves   []int
	nextID  int
	live    map[int]bool
	openErr error
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{live: make(map[int]bool)}
}

func (s *fakeSurface) OpenPanel(_ context.Context, spec port.PanelSpec) (port.PanelHandle, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	s.nextID++
	s.specs = append(s.specs, spec)
	s.live[s.nextID] = true
	return &fakeHandle{id: s.nextID}, nil
}

func (s *fakeSurface) UpdatePanel(_ context.Context, h port.PanelHandle, lines []string) error {
	if !s.live[h.(*fakeHandle).id] {
		return errors.New("update on closed panel")
	}
	s.updates = append(s.updates, lines)
	return nil
}

func (s *fakeSurface) MoveCursor(_ context.Context, h port.PanelHandle, row int) error {
	if !s.live[h.(*fakeHandle).id] {
		return errors.New("move on closed panel")
	}
	s.moves = append(s.moves, row)
	return nil
}

func (s *fakeSurface) ClosePanel(_ context.Context, h port.PanelHandle) error {
	delete(s.live, h.(*fakeHandle).id)
	return nil
}

type stubRepo struct {
	settings entity.FontSettings
	families []string
	sizes    []float64
}

func (s *stubRepo) Current(_ context.Context) (*entity.FontSettings, error) {
	settings := s.settings
	return &settings, nil
}

func (s *stubRepo) ReplaceFamily(_ context.Context, display string) error {
	s.families = append(s.families, display)
	s.settings.Family = display
	return nil
}

func (s *stubRepo) ReplaceSize(_ context.Context, points float64) error {
	s.sizes = append(s.sizes, points)
	s.settings.SizeText = entity.FormatSize(points)
	return nil
}

type stubEnumerator struct {
	fonts []string
}

func (s *stubEnumerator) InstalledFamilies(_ context.Context) ([]string, error) {
	return s.fonts, nil
}

type stubLister struct {
	fonts []string
}

func (s *stubLister) UsableFamilies(_ context.Context) ([]string, error) {
	return s.fonts, nil
}

func newTestEngine(repo *stubRepo, installed, usable []string) (*Engine, *fakeSurface) {
	res := resolver.New(&stubEnumerator{fonts: installed}, &stubLister{fonts: usable}, 0)
	surface := newFakeSurface()
	engine := New(surface, usecase.NewManageFontUseCase(repo, res), usecase.NewBrowseFontsUseCase(res), config.DefaultConfig())
	return engine, surface
}

func TestEngine_OpenMenu(t *testing.T) {
	ctx := testContext()
	engine, surface := newTestEngine(&stubRepo{}, nil, nil)

	require.NoError(t, engine.OpenMenu(ctx))
	assert.Equal(t, StateMainMenu, engine.State())

	require.Len(t, surface.specs, 1)
	spec := surface.specs[0]
	assert.Equal(t, port.PanelMainMenu, spec.Kind)
	assert.Equal(t, " Kittyfont ", spec.Title)
	assert.Equal(t, []string{
		"Check current font",
		"Set font family",
		"Set font size",
		"Show installed fonts",
	}, spec.Lines)
	assert.Equal(t, 0, spec.Cursor)

	require.ErrorIs(t, engine.OpenMenu(ctx), ErrAlreadyOpen)
}

func TestEngine_CloseReleasesPanel(t *testing.T) {
	ctx := testContext()
	engine, surface := newTestEngine(&stubRepo{}, nil, nil)

	require.NoError(t, engine.OpenMenu(ctx))
	require.NoError(t, engine.Close(ctx))

	assert.Equal(t, StateClosed, engine.State())
	assert.Empty(t, surface.live)

	require.ErrorIs(t, engine.Close(ctx), ErrAlreadyClosed)
}

func TestEngine_OpenFailureStaysClosed(t *testing.T) {
	ctx := testContext()
	engine, surface := newTestEngine(&stubRepo{}, nil, nil)
	surface.openErr = errors.New("host refused")

	require.Error(t, engine.OpenMenu(ctx))
	assert.Equal(t, StateClosed, engine.State())
}

func TestEngine_MenuCursor(t *testing.T) {
	ctx := testContext()
	engine, surface := newTestEngine(&stubRepo{}, nil, nil)
	require.NoError(t, engine.OpenMenu(ctx))

	// Clamped at the top edge.
	_, err := engine.HandleKey(ctx, "up")
	require.NoError(t, err)
	assert.Empty(t, surface.moves)

	_, err = engine.HandleKey(ctx, "down")
	require.NoError(t, err)
	_, err = engine.HandleKey(ctx, "j")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, surface.moves)

	_, err = engine.HandleKey(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1}, surface.moves)
}

func TestEngine_MenuActivation(t *testing.T) {
	tests := []struct {
		item string
		want port.PanelKind
	}{
		{"Check current font", port.PanelFontInfo},
		{"Set font family", port.PanelFamilyPicker},
		{"Set font size", port.PanelSizeControl},
		{"Show installed fonts", port.PanelFontList},
	}

	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			ctx := testContext()
			repo := &stubRepo{settings: entity.FontSettings{Family: "Fira Code", SizeText: "12"}}
			engine, surface := newTestEngine(repo, []string{"Fira Code"}, []string{"FiraCode"})
			require.NoError(t, engine.OpenMenu(ctx))

			row := indexOf(menuItems(), tt.item)
			for i := 0; i < row; i++ {
				_, err := engine.HandleKey(ctx, "down")
				require.NoError(t, err)
			}
			_, err := engine.HandleKey(ctx, "enter")
			require.NoError(t, err)

			require.Len(t, surface.specs, 2)
			assert.Equal(t, tt.want, surface.specs[1].Kind)
			assert.Len(t, surface.live, 1)
		})
	}
}

func TestEngine_MenuSizeEntryAbortsOnUnknownSize(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{settings: entity.FontSettings{SizeText: entity.SizeUnknown}}
	engine, _ := newTestEngine(repo, nil, nil)
	require.NoError(t, engine.OpenMenu(ctx))

	_, err := engine.HandleKey(ctx, "down")
	require.NoError(t, err)
	_, err = engine.HandleKey(ctx, "down")
	require.NoError(t, err)
	_, err = engine.HandleKey(ctx, "enter")
	require.ErrorIs(t, err, usecase.ErrSizeUnknown)
	assert.Equal(t, StateClosed, engine.State())
}

func TestEngine_FamilyPickerPreselectsCurrent(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{settings: entity.FontSettings{Family: "Iosevka", SizeText: "12"}}
	engine, surface := newTestEngine(repo,
		[]string{"Fira Code", "Iosevka"},
		[]string{"FiraCode", "Iosevka"},
	)

	require.NoError(t, engine.OpenFamilyPicker(ctx))
	require.Len(t, surface.specs, 1)
	assert.Equal(t, []string{"Fira Code", "Iosevka"}, surface.specs[0].Lines)
	assert.Equal(t, 1, surface.specs[0].Cursor)
}

func TestEngine_FamilyPickerUnknownCurrentDefaultsTop(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{settings: entity.FontSettings{Family: "Comic Sans", SizeText: "12"}}
	engine, surface := newTestEngine(repo, []string{"Fira Code"}, []string{"FiraCode"})

	require.NoError(t, engine.OpenFamilyPicker(ctx))
	assert.Equal(t, 0, surface.specs[0].Cursor)
}

func TestEngine_FamilyPickerApplyKeepsPanelOpen(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{settings: entity.FontSettings{Family: "Iosevka", SizeText: "12"}}
	engine, surface := newTestEngine(repo,
		[]string{"Fira Code", "Iosevka"},
		[]string{"FiraCode", "Iosevka"},
	)
	require.NoError(t, engine.OpenFamilyPicker(ctx))

	_, err := engine.HandleKey(ctx, "up")
	require.NoError(t, err)
	notice, err := engine.HandleKey(ctx, "enter")
	require.NoError(t, err)

	assert.Equal(t, "Font family set to Fira Code", notice)
	assert.Equal(t, []string{"Fira Code"}, repo.families)
	assert.Equal(t, StateFamilyPicker, engine.State())
	assert.Len(t, surface.live, 1)
}

func TestEngine_FamilyPickerBack(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{settings: entity.FontSettings{Family: "Fira Code", SizeText: "12"}}
	engine, surface := newTestEngine(repo, []string{"Fira Code"}, []string{"FiraCode"})
	require.NoError(t, engine.OpenFamilyPicker(ctx))

	_, err := engine.HandleKey(ctx, "esc")
	require.NoError(t, err)

	assert.Equal(t, StateMainMenu, engine.State())
	require.Len(t, surface.specs, 2)
	assert.Equal(t, port.PanelMainMenu, surface.specs[1].Kind)
	assert.Len(t, surface.live, 1)
}

func TestEngine_FamilyPickerQuitClosesOnly(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{settings: entity.FontSettings{Family: "Fira Code", SizeText: "12"}}
	engine, surface := newTestEngine(repo, []string{"Fira Code"}, []string{"FiraCode"})
	require.NoError(t, engine.OpenFamilyPicker(ctx))

	_, err := engine.HandleKey(ctx, "q")
	require.NoError(t, err)

	assert.Equal(t, StateClosed, engine.State())
	assert.Len(t, surface.specs, 1)
	assert.Empty(t, surface.live)
}

func TestEngine_SizeControlGuard(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{settings: entity.FontSettings{SizeText: entity.SizeUnknown}}
	engine, surface := newTestEngine(repo, nil, nil)

	require.ErrorIs(t, engine.OpenSizeControl(ctx), usecase.ErrSizeUnknown)
	assert.Equal(t, StateClosed, engine.State())
	assert.Empty(t, surface.specs)
}

func TestEngine_SizeControlAdjust(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{settings: entity.FontSettings{Family: "Fira Code", SizeText: "12"}}
	engine, surface := newTestEngine(repo, nil, nil)

	require.NoError(t, engine.OpenSizeControl(ctx))
	require.Len(t, surface.specs, 1)
	assert.Equal(t, []string{"", "Current size: [ 12 ]", ""}, surface.specs[0].Lines)

	_, err := engine.HandleKey(ctx, "+")
	require.NoError(t, err)
	assert.Equal(t, []float64{12.5}, repo.sizes)
	require.Len(t, surface.updates, 1)
	assert.Equal(t, []string{"", "Current size: [ 12.5 ]", ""}, surface.updates[0])
	assert.Equal(t, StateSizeControl, engine.State())

	_, err = engine.HandleKey(ctx, "-")
	require.NoError(t, err)
	assert.Equal(t, []float64{12.5, 12}, repo.sizes)
	assert.Equal(t, []string{"", "Current size: [ 12 ]", ""}, surface.updates[1])
}

func TestEngine_RefreshSize(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{settings: entity.FontSettings{SizeText: "12"}}
	engine, surface := newTestEngine(repo, nil, nil)

	// No size panel open: silent no-op.
	require.NoError(t, engine.RefreshSize(ctx, 14))
	assert.Empty(t, surface.updates)

	require.NoError(t, engine.OpenSizeControl(ctx))
	require.NoError(t, engine.RefreshSize(ctx, 14))
	require.Len(t, surface.updates, 1)
	assert.Equal(t, []string{"", "Current size: [ 14 ]", ""}, surface.updates[0])
}

func TestEngine_FontInfo(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{settings: entity.FontSettings{Family: "Fira Code", SizeText: "12.5"}}
	engine, surface := newTestEngine(repo, nil, nil)

	require.NoError(t, engine.OpenFontInfo(ctx))
	require.Len(t, surface.specs, 1)
	assert.Equal(t, []string{"Family: Fira Code", "Size:   12.5"}, surface.specs[0].Lines)
	assert.Equal(t, " Current Font Info ", surface.specs[0].Title)

	_, err := engine.HandleKey(ctx, "q")
	require.NoError(t, err)
	assert.Equal(t, StateClosed, engine.State())
}

func TestEngine_FontList(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{settings: entity.FontSettings{Family: "Fira Code", SizeText: "12"}}
	engine, surface := newTestEngine(repo,
		[]string{"Fira Code", "Iosevka", "Noto Sans"},
		[]string{"FiraCode", "Iosevka", "NotoSans"},
	)

	require.NoError(t, engine.OpenFontList(ctx))
	require.Len(t, surface.specs, 1)

	joined := ""
	for _, line := range surface.specs[0].Lines {
		joined += line + "\n"
	}
	assert.Contains(t, joined, "Fira Code")
	assert.Contains(t, joined, "Iosevka")
	assert.Contains(t, joined, "Noto Sans")

	_, err := engine.HandleKey(ctx, "esc")
	require.NoError(t, err)
	assert.Equal(t, StateClosed, engine.State())
}

func TestEngine_HandleKeyWhileClosed(t *testing.T) {
	ctx := testContext()
	engine, _ := newTestEngine(&stubRepo{}, nil, nil)

	notice, err := engine.HandleKey(ctx, "enter")
	require.NoError(t, err)
	assert.Empty(t, notice)
	assert.Equal(t, StateClosed, engine.State())
}

package command_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittyfont/kittyfont/internal/application/port"
	"github.com/kittyfont/kittyfont/internal/application/resolver"
	"github.com/kittyfont/kittyfont/internal/application/usecase"
	"github.com/kittyfont/kittyfont/internal/command"
	"github.com/kittyfont/kittyfont/internal/config"
	"github.com/kittyfont/kittyfont/internal/domain/entity"
	"github.com/kittyfont/kittyfont/internal/logging"
	"github.com/kittyfont/kittyfont/internal/nav"
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
	nextID  int
}

func (s *fakeSurface) OpenPanel(_ context.Context, spec port.PanelSpec) (port.PanelHandle, error) {
	s.nextID++
	s.specs = append(s.specs, spec)
	return &fakeHandle{id: s.nextID}, nil
}

func (s *fakeSurface) UpdatePanel(_ context.Context, _ port.PanelHandle, lines []string) error {
	s.updates = append(s.updates, lines)
	return nil
}

func (s *fakeSurface) MoveCursor(_ context.Context, _ port.PanelHandle, _ int) error {
	return nil
}

func (s *fakeSurface) ClosePanel(_ context.Context, _ port.PanelHandle) error {
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

func newTestRouter(repo *stubRepo, installed, usable []string) (*command.Router, *nav.Engine, *fakeSurface) {
	res := resolver.New(&stubEnumerator{fonts: installed}, &stubLister{fonts: usable}, 0)
	fonts := usecase.NewManageFontUseCase(repo, res)
	browser := usecase.NewBrowseFontsUseCase(res)
	surface := &fakeSurface{}
	engine := nav.New(surface, fonts, browser, config.DefaultConfig())
	return command.New(engine, fonts, browser), engine, surface
}

func TestRouter_OpenMenu(t *testing.T) {
	ctx := testContext()
	router, engine, _ := newTestRouter(&stubRepo{}, nil, nil)

	notice, err := router.Dispatch(ctx, command.ActionMenu, "")
	require.NoError(t, err)
	assert.Empty(t, notice)
	assert.Equal(t, nav.StateMainMenu, engine.State())

	notice, err = router.Dispatch(ctx, command.ActionMenu, "")
	require.NoError(t, err)
	assert.Equal(t, "Window is already open", notice)
}

func TestRouter_Check(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{settings: entity.FontSettings{Family: "Fira Code", SizeText: "12"}}
	router, _, _ := newTestRouter(repo, nil, nil)

	notice, err := router.Dispatch(ctx, command.ActionCheck, "")
	require.NoError(t, err)
	assert.Equal(t, "Font family: Fira Code\nFont size: 12", notice)
}

func TestRouter_FloatCheck(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{settings: entity.FontSettings{Family: "Fira Code", SizeText: "12"}}
	router, engine, _ := newTestRouter(repo, nil, nil)

	_, err := router.Dispatch(ctx, command.ActionFloatCheck, "")
	require.NoError(t, err)
	assert.Equal(t, nav.StateFontInfo, engine.State())
}

func TestRouter_SetFontDirect(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{}
	router, engine, _ := newTestRouter(repo, []string{"Fira Code"}, []string{"FiraCode"})

	notice, err := router.Dispatch(ctx, command.ActionSetFont, "FiraCode")
	require.NoError(t, err)
	assert.Equal(t, "Font family set to Fira Code", notice)
	assert.Equal(t, []string{"Fira Code"}, repo.families)
	assert.Equal(t, nav.StateClosed, engine.State())
}

func TestRouter_SetFontUnknown(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{}
	router, _, _ := newTestRouter(repo, []string{"Fira Code"}, []string{"FiraCode"})

	_, err := router.Dispatch(ctx, command.ActionSetFont, "Comic Sans")
	var notInstalled *usecase.FontNotInstalledError
	require.ErrorAs(t, err, &notInstalled)
	assert.Empty(t, repo.families)
}

func TestRouter_SetFontOpensPicker(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{settings: entity.FontSettings{Family: "Fira Code", SizeText: "12"}}
	router, engine, _ := newTestRouter(repo, []string{"Fira Code"}, []string{"FiraCode"})

	notice, err := router.Dispatch(ctx, command.ActionSetFont, "")
	require.NoError(t, err)
	assert.Empty(t, notice)
	assert.Equal(t, nav.StateFamilyPicker, engine.State())
}

func TestRouter_SetSizeDirect(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{}
	router, _, _ := newTestRouter(repo, nil, nil)

	notice, err := router.Dispatch(ctx, command.ActionSetSize, "13")
	require.NoError(t, err)
	assert.Equal(t, "Font size set to 13", notice)
	assert.Equal(t, []float64{13}, repo.sizes)
}

func TestRouter_SetSizeClamps(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{}
	router, _, _ := newTestRouter(repo, nil, nil)

	notice, err := router.Dispatch(ctx, command.ActionSetSize, "9999")
	require.NoError(t, err)
	assert.Equal(t, "Font size set to 512", notice)
}

func TestRouter_SetSizeInvalid(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{}
	router, _, _ := newTestRouter(repo, nil, nil)

	_, err := router.Dispatch(ctx, command.ActionSetSize, "huge")
	require.ErrorIs(t, err, command.ErrInvalidSize)
	assert.Empty(t, repo.sizes)
}

func TestRouter_SetSizeOpensControl(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{settings: entity.FontSettings{SizeText: "12"}}
	router, engine, _ := newTestRouter(repo, nil, nil)

	_, err := router.Dispatch(ctx, command.ActionSetSize, "")
	require.NoError(t, err)
	assert.Equal(t, nav.StateSizeControl, engine.State())
}

func TestRouter_SetSizeControlGuard(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{settings: entity.FontSettings{SizeText: entity.SizeUnknown}}
	router, engine, _ := newTestRouter(repo, nil, nil)

	_, err := router.Dispatch(ctx, command.ActionSetSize, "")
	require.ErrorIs(t, err, usecase.ErrSizeUnknown)
	assert.Equal(t, nav.StateClosed, engine.State())
}

func TestRouter_SizeUpDown(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{settings: entity.FontSettings{SizeText: "12"}}
	router, _, _ := newTestRouter(repo, nil, nil)

	notice, err := router.Dispatch(ctx, command.ActionSizeUp, "")
	require.NoError(t, err)
	assert.Equal(t, "Font size set to 12.5", notice)

	notice, err = router.Dispatch(ctx, command.ActionSizeDown, "")
	require.NoError(t, err)
	assert.Equal(t, "Font size set to 12", notice)
	assert.Equal(t, []float64{12.5, 12}, repo.sizes)
}

func TestRouter_SizeUpRefreshesOpenPanel(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{settings: entity.FontSettings{SizeText: "12"}}
	router, _, surface := newTestRouter(repo, nil, nil)

	_, err := router.Dispatch(ctx, command.ActionSetSize, "")
	require.NoError(t, err)

	_, err = router.Dispatch(ctx, command.ActionSizeUp, "")
	require.NoError(t, err)
	require.Len(t, surface.updates, 1)
	assert.Equal(t, []string{"", "Current size: [ 12.5 ]", ""}, surface.updates[0])
}

func TestRouter_List(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{}
	router, _, _ := newTestRouter(repo,
		[]string{"Iosevka", "Fira Code"},
		[]string{"FiraCode", "Iosevka"},
	)

	notice, err := router.Dispatch(ctx, command.ActionList, "")
	require.NoError(t, err)
	assert.Equal(t, "Available fonts:\n  - Fira Code\n  - Iosevka", notice)
}

func TestRouter_List_EmptyCatalog(t *testing.T) {
	ctx := testContext()
	router, _, _ := newTestRouter(&stubRepo{}, nil, nil)

	notice, err := router.Dispatch(ctx, command.ActionList, "")
	require.NoError(t, err)
	assert.Equal(t, "Available fonts:", notice)
}

func TestRouter_FloatList(t *testing.T) {
	ctx := testContext()
	repo := &stubRepo{}
	router, engine, _ := newTestRouter(repo, []string{"Fira Code"}, []string{"FiraCode"})

	_, err := router.Dispatch(ctx, command.ActionFloatList, "")
	require.NoError(t, err)
	assert.Equal(t, nav.StateFontList, engine.State())
}

func TestRouter_Close(t *testing.T) {
	ctx := testContext()
	router, engine, _ := newTestRouter(&stubRepo{}, nil, nil)

	notice, err := router.Dispatch(ctx, command.ActionClose, "")
	require.NoError(t, err)
	assert.Equal(t, "Window is already closed", notice)

	_, err = router.Dispatch(ctx, command.ActionMenu, "")
	require.NoError(t, err)
	notice, err = router.Dispatch(ctx, command.ActionClose, "")
	require.NoError(t, err)
	assert.Empty(t, notice)
	assert.Equal(t, nav.StateClosed, engine.State())
}

func TestRouter_UnknownAction(t *testing.T) {
	ctx := testContext()
	router, engine, _ := newTestRouter(&stubRepo{}, nil, nil)

	notice, err := router.Dispatch(ctx, "bogus", "")
	require.NoError(t, err)
	assert.Equal(t, "Unknown command: bogus", notice)
	assert.Equal(t, nav.StateClosed, engine.State())
}

func TestRouter_CompleteActions(t *testing.T) {
	ctx := testContext()
	router, _, _ := newTestRouter(&stubRepo{}, nil, nil)

	got := router.Complete(ctx, nil, "")
	assert.Equal(t, command.Actions(), got)

	got = router.Complete(ctx, nil, "s")
	assert.Equal(t, []string{"set_font", "set_size", "size_down", "size_up"}, got)
}

func TestRouter_CompleteFontKeys(t *testing.T) {
	ctx := testContext()
	router, _, _ := newTestRouter(&stubRepo{},
		[]string{"Fira Code", "Iosevka", "Noto Sans"},
		[]string{"FiraCode", "Iosevka", "NotoSans"},
	)

	got := router.Complete(ctx, []string{"set_font"}, "")
	assert.Equal(t, []string{"FiraCode", "Iosevka", "NotoSans"}, got)

	got = router.Complete(ctx, []string{"set_font"}, "fira")
	assert.Equal(t, []string{"FiraCode"}, got)

	got = router.Complete(ctx, []string{"check"}, "")
	assert.Nil(t, got)
}

func TestOpensPanel(t *testing.T) {
	assert.True(t, command.OpensPanel(command.ActionMenu, ""))
	assert.True(t, command.OpensPanel(command.ActionFloatCheck, ""))
	assert.True(t, command.OpensPanel(command.ActionFloatList, ""))
	assert.True(t, command.OpensPanel(command.ActionSetFont, ""))
	assert.True(t, command.OpensPanel(command.ActionSetSize, ""))

	assert.False(t, command.OpensPanel(command.ActionSetFont, "Fira Code"))
	assert.False(t, command.OpensPanel(command.ActionSetSize, "12"))
	assert.False(t, command.OpensPanel(command.ActionCheck, ""))
	assert.False(t, command.OpensPanel(command.ActionList, ""))
	assert.False(t, command.OpensPanel(command.ActionClose, ""))
	assert.False(t, command.OpensPanel("bogus", ""))
}

package ui

import (
	"bytes"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HUDUI holds the ebitenui overlay with score, level and bird selection
type HUDUI struct {
	UI *ebitenui.UI

	scoreLabel     *widget.Label
	levelLabel     *widget.Label
	selectionLabel *widget.Label
	bestLabel      *widget.Label

	face      text.Face
	smallFace text.Face
}

// NewHUDUI creates the HUD overlay
func NewHUDUI() (*HUDUI, error) {
	h := &HUDUI{}
	if err := h.loadFonts(); err != nil {
		return nil, err
	}
	h.buildUI()
	return h, nil
}

func (h *HUDUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}

	h.face = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.HUD.FontSize,
	}
	h.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.HUD.FontSize * 0.7,
	}
	return nil
}

func (h *HUDUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.NewInsetsSimple(cfg.HUD.Margin)
	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(cfg.HUD.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	h.scoreLabel = h.newLabel(&h.face)
	h.levelLabel = h.newLabel(&h.face)
	h.selectionLabel = h.newLabel(&h.face)
	h.bestLabel = h.newLabel(&h.smallFace)

	column.AddChild(h.scoreLabel)
	column.AddChild(h.levelLabel)
	column.AddChild(h.selectionLabel)
	column.AddChild(h.bestLabel)
	rootContainer.AddChild(column)

	h.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (h *HUDUI) newLabel(face *text.Face) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", face, &widget.LabelColor{
			Idle: cfg.HUD.TextColor,
		}),
	)
}

// Refresh copies the formatted HUD state into the labels
func (h *HUDUI) Refresh(state systems.HUDState) {
	h.scoreLabel.Label = state.Score
	h.levelLabel.Label = state.Level
	h.selectionLabel.Label = state.Selection
	h.bestLabel.Label = state.Best
}

func (h *HUDUI) Update() {
	h.UI.Update()
}

func (h *HUDUI) Draw(screen *ebiten.Image) {
	h.UI.Draw(screen)
}

package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	cfg "github.com/automoto/pong-royale/config"
	"github.com/automoto/pong-royale/lobby"
	"github.com/automoto/pong-royale/stats"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for match setup
type MenuUI struct {
	UI    *ebitenui.UI
	Lobby *lobby.LobbyData
	Stats *stats.Store

	// Callbacks
	OnStartMatch func()
	OnQuit       func()

	// Widget references for updates
	playersLabel *widget.Label
	seatsLabel   *widget.Label
	livesLabel   *widget.Label
	arenaLabel   *widget.Label
	totalsLabel  *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// Initialization tracking
	initialized bool
}

// NewMenuUI creates a new match setup UI with ebitenui
func NewMenuUI(l *lobby.LobbyData, st *stats.Store, onStartMatch, onQuit func()) *MenuUI {
	mui := &MenuUI{
		Lobby:        l,
		Stats:        st,
		OnStartMatch: onStartMatch,
		OnQuit:       onQuit,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.TitleFontSize,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.HUDFontSize + 4,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.HUDFontSize,
	}
}

func (mui *MenuUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("PONG ROYALE", &mui.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(mui.buildSettingsContainer())

	mui.totalsLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	)
	contentContainer.AddChild(mui.totalsLabel)

	contentContainer.AddChild(mui.buildButtonsContainer())

	help := widget.NewLabel(
		widget.LabelOpts.Text("Top A/D/S   Right Up/Down/Left   Bottom J/L/K   Left I/P/O", &mui.smallFace, &widget.LabelColor{
			Idle: cfg.DarkBlue,
		}),
	)
	contentContainer.AddChild(help)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Note: Don't call UpdateUI() here - widgets aren't validated yet
}

func (mui *MenuUI) buildSettingsContainer() *widget.Container {
	padding := widget.Insets{Top: 8, Bottom: 8, Left: 12, Right: 12}
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	mui.playersLabel = mui.addSettingRow(container, "Players:", func() {
		mui.Lobby.CyclePlayers()
	})

	mui.seatsLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	container.AddChild(mui.seatsLabel)

	mui.livesLabel = mui.addSettingRow(container, "Lives:", func() {
		mui.Lobby.CycleLives()
	})
	mui.arenaLabel = mui.addSettingRow(container, "Arena:", func() {
		mui.Lobby.CycleArena()
	})

	return container
}

// addSettingRow appends a "name value [Change]" row and returns the value
// label.
func (mui *MenuUI) addSettingRow(container *widget.Container, name string, cycle func()) *widget.Label {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	nameLabel := widget.NewLabel(
		widget.LabelOpts.Text(name, &mui.normalFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	row.AddChild(nameLabel)

	valueLabel := widget.NewLabel(
		widget.LabelOpts.Text("", &mui.normalFace, &widget.LabelColor{
			Idle: cfg.BrightYellow,
		}),
	)
	row.AddChild(valueLabel)

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 24)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("Change", &mui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			cycle()
			mui.UpdateUI()
		}),
	)
	row.AddChild(button)

	container.AddChild(row)
	return valueLabel
}

func (mui *MenuUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
		)),
	)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 36)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("Quit", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnQuit != nil {
				mui.OnQuit()
			}
		}),
	)
	container.AddChild(quitButton)

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 36)),
		widget.ButtonOpts.Image(mui.startButtonImage()),
		widget.ButtonOpts.Text("START", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnStartMatch != nil {
				mui.OnStartMatch()
			}
		}),
	)
	container.AddChild(startButton)

	return container
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

func (mui *MenuUI) startButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

// UpdateUI updates all UI elements to reflect current lobby state
func (mui *MenuUI) UpdateUI() {
	if mui.playersLabel != nil {
		mui.playersLabel.Label = lobby.GetPlayerCountName(mui.Lobby.PlayerCount())
	}
	if mui.seatsLabel != nil {
		mui.seatsLabel.Label = "Seats: " + strings.Join(lobby.SeatedNames(mui.Lobby.PlayerCount(), cfg.PlayerNames), ", ")
	}
	if mui.livesLabel != nil {
		mui.livesLabel.Label = fmt.Sprintf("%d", mui.Lobby.Lives())
	}
	if mui.arenaLabel != nil {
		mui.arenaLabel.Label = lobby.GetArenaDisplayName(mui.Lobby.Arena())
	}
	if mui.totalsLabel != nil && mui.Stats != nil {
		t := mui.Stats.Totals()
		mui.totalsLabel.Label = fmt.Sprintf("Wins  Top %d  Right %d  Bottom %d  Left %d   Draws %d   Matches %d",
			t.Wins[0], t.Wins[1], t.Wins[2], t.Wins[3], t.Draws, t.Matches)
	}
}

// Update calls the UI's Update method
func (mui *MenuUI) Update() {
	mui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !mui.initialized {
		mui.initialized = true
		mui.UpdateUI()
	}
}

package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/archer-arena/persistence"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SetupUI is the match setup screen: mode, arena and bot options for a
// local match, plus the name and address used to join a server.
type SetupUI struct {
	UI       *ebitenui.UI
	Settings *persistence.SavedSettings

	// Callbacks
	OnPlay   func()
	OnJoin   func()
	OnChange func()

	arenas []string

	titleLabel  *widget.Label
	modeButton  *widget.Button
	arenaButton *widget.Button
	botsButton  *widget.Button
	diffButton  *widget.Button
	debugButton *widget.Button
	nameInput   *widget.TextInput
	addrInput   *widget.TextInput
	bestLabel   *widget.Label
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewSetupUI builds the screen around settings, which it edits in place.
// arenas lists the bundled arena names.
func NewSetupUI(settings *persistence.SavedSettings, arenas []string, onPlay, onJoin, onChange func()) *SetupUI {
	ui := &SetupUI{
		Settings: settings,
		OnPlay:   onPlay,
		OnJoin:   onJoin,
		OnChange: onChange,
		arenas:   arenas,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *SetupUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 36}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 14}
}

func (ui *SetupUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{18, 18, 24, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	ui.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text("ARCHER ARENA", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 80, 255},
		}),
	)
	contentContainer.AddChild(ui.titleLabel)

	contentContainer.AddChild(ui.buildMatchPanel())
	contentContainer.AddChild(ui.buildJoinPanel())

	ui.bestLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{150, 150, 160, 255},
		}),
	)
	contentContainer.AddChild(ui.bestLabel)

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{230, 120, 90, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *SetupUI) buildMatchPanel() *widget.Container {
	panel := ui.panel()

	ui.modeButton = ui.settingRow(panel, "Mode:", func() { CycleMode(ui.Settings) })
	ui.arenaButton = ui.settingRow(panel, "Arena:", func() { CycleArena(ui.Settings, ui.arenas) })
	ui.botsButton = ui.settingRow(panel, "Bots:", func() { CycleBots(ui.Settings) })
	ui.diffButton = ui.settingRow(panel, "Difficulty:", func() { CycleDifficulty(ui.Settings) })
	ui.debugButton = ui.settingRow(panel, "Debug:", func() { ui.Settings.ShowDebug = !ui.Settings.ShowDebug })

	playButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 32)),
		widget.ButtonOpts.Image(ui.startButtonImage()),
		widget.ButtonOpts.Text("PLAY", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.readInputs()
			if ui.OnPlay != nil {
				ui.OnPlay()
			}
		}),
	)
	panel.AddChild(playButton)

	return panel
}

func (ui *SetupUI) buildJoinPanel() *widget.Container {
	panel := ui.panel()

	ui.nameInput = ui.inputRow(panel, "Name:", ui.Settings.PlayerName)
	ui.addrInput = ui.inputRow(panel, "Server:", ui.Settings.ServerAddress)

	joinButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 32)),
		widget.ButtonOpts.Image(ui.buttonImage()),
		widget.ButtonOpts.Text("JOIN SERVER", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.readInputs()
			if ui.OnJoin != nil {
				ui.OnJoin()
			}
		}),
	)
	panel.AddChild(joinButton)

	return panel
}

func (ui *SetupUI) panel() *widget.Container {
	padding := widget.Insets{Top: 8, Bottom: 8, Left: 12, Right: 12}
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
}

func (ui *SetupUI) row(parent *widget.Container, caption string) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(caption, &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))
	parent.AddChild(row)
	return row
}

// settingRow adds a caption and a button that runs cycle when clicked.
func (ui *SetupUI) settingRow(parent *widget.Container, caption string, cycle func()) *widget.Button {
	btn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 26)),
		widget.ButtonOpts.Image(ui.buttonImage()),
		widget.ButtonOpts.Text("", &ui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			cycle()
			ui.UpdateUI()
			if ui.OnChange != nil {
				ui.OnChange()
			}
		}),
	)
	ui.row(parent, caption).AddChild(btn)
	return btn
}

// inputRow adds a caption and a text field. The saved value is shown as the
// placeholder and kept when the field is left blank.
func (ui *SetupUI) inputRow(parent *widget.Container, caption, saved string) *widget.TextInput {
	input := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 26)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(saved),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
	ui.row(parent, caption).AddChild(input)
	return input
}

func (ui *SetupUI) readInputs() {
	s := ui.Settings
	s.PlayerName = fieldValue(ui.nameInput.GetText(), s.PlayerName, MaxNameLength)
	s.ServerAddress = fieldValue(ui.addrInput.GetText(), s.ServerAddress, MaxAddrLength)
}

func (ui *SetupUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (ui *SetupUI) startButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}

// UpdateUI copies the current settings into the button captions.
func (ui *SetupUI) UpdateUI() {
	s := ui.Settings
	setButtonText(ui.modeButton, Mode(s).String())
	setButtonText(ui.arenaButton, ArenaLabel(s.Arena))
	setButtonText(ui.botsButton, fmt.Sprintf("%d", s.Bots))
	setButtonText(ui.diffButton, Difficulty(s).String())
	setButtonText(ui.debugButton, fmt.Sprintf("%t", s.ShowDebug))

	if ui.titleLabel != nil {
		ui.titleLabel.Label = Title(Mode(s))
	}
}

func setButtonText(b *widget.Button, label string) {
	if b == nil {
		return
	}
	if t := b.Text(); t != nil {
		t.Label = label
	}
}

func (ui *SetupUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *SetupUI) SetBest(line string) {
	if ui.bestLabel != nil {
		ui.bestLabel.Label = line
	}
}

func (ui *SetupUI) Update() {
	ui.UI.Update()
	// Button captions need validated widgets, so fill them on the first frame
	if !ui.initialized {
		ui.initialized = true
		ui.UpdateUI()
	}
}

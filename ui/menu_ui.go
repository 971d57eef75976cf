package ui

import (
	"image/color"

	"github.com/automoto/dasher/components"
	cfg "github.com/automoto/dasher/config"
	"github.com/automoto/dasher/fonts"
	"github.com/automoto/dasher/shared/stats"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MenuUI holds the ebitenui interface for the variant picker
type MenuUI struct {
	UI   *ebitenui.UI
	Menu *components.MenuData

	// Callbacks
	OnPick func(components.MenuOption)

	// Widget references for updates
	buttons    []*widget.Button
	statLabels []*widget.Label
	descLabel  *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates a new menu UI with ebitenui
func NewMenuUI(menu *components.MenuData, onPick func(components.MenuOption)) *MenuUI {
	mui := &MenuUI{
		Menu:   menu,
		OnPick: onPick,
	}

	mui.titleFace = fonts.UIFace(cfg.Menu.TitleFontSize)
	mui.normalFace = fonts.UIFace(cfg.Menu.FontSize)
	mui.smallFace = fonts.UIFace(cfg.Menu.FontSize - 4)

	mui.buildUI()

	return mui
}

func (mui *MenuUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &mui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	for i, opt := range mui.Menu.Options {
		contentContainer.AddChild(mui.buildOption(i, opt))
	}

	mui.descLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &mui.smallFace, &widget.LabelColor{
			Idle: cfg.Menu.TextColor,
		}),
	)
	contentContainer.AddChild(mui.descLabel)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// buildOption creates the button of one option and, for variants, the
// statistics line under it.
func (mui *MenuUI) buildOption(index int, opt components.MenuOption) *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(1),
		)),
	)

	idx := index // Capture for closure
	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Menu.ButtonWidth, cfg.Menu.ButtonHeight),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(opt.Title, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.Menu.TextColor,
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			mui.Menu.SelectedIndex = idx
			if mui.OnPick != nil {
				mui.OnPick(mui.Menu.Options[idx])
			}
		}),
	)
	mui.buttons = append(mui.buttons, button)
	container.AddChild(button)

	statLabel := widget.NewLabel(
		widget.LabelOpts.Text("", &mui.smallFace, &widget.LabelColor{
			Idle: cfg.Menu.StatsColor,
		}),
	)
	mui.statLabels = append(mui.statLabels, statLabel)
	container.AddChild(statLabel)

	return container
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(cfg.Menu.ButtonIdle)
	hover := image.NewNineSliceColor(cfg.Menu.ButtonHover)
	pressed := image.NewNineSliceColor(cfg.Menu.ButtonPressed)
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes labels from the menu selection and the statistics
func (mui *MenuUI) UpdateUI(book *stats.Book) {
	for i, opt := range mui.Menu.Options {
		label := opt.Title
		if i == mui.Menu.SelectedIndex {
			label = "> " + label + " <"
			mui.descLabel.Label = opt.Description
		}
		if textWidget := mui.buttons[i].Text(); textWidget != nil {
			textWidget.Label = label
		}

		if opt.IsQuit() {
			continue
		}
		mui.statLabels[i].Label = book.Get(opt.Variant).Summary()
	}
}

// Update calls the UI's Update method and refreshes the labels
func (mui *MenuUI) Update(book *stats.Book) {
	mui.UI.Update()
	mui.UpdateUI(book)
}

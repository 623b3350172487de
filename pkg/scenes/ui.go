package scenes

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/wishingwell/pkg/config"
)

// uiKit 共享的控件样式：纯色九宫格背景 + 内置位图字体
// 不依赖任何主题资源，所有界面都用它构造
type uiKit struct {
	face        ebtext.Face
	buttonImage *widget.ButtonImage
	buttonText  *widget.ButtonTextColor
	panelImage  *imageui.NineSlice
}

func newUIKit() *uiKit {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	return &uiKit{
		face: face,
		buttonImage: &widget.ButtonImage{
			Idle:     imageui.NewNineSliceColor(config.ColorButton),
			Hover:    imageui.NewNineSliceColor(config.ColorButtonHover),
			Pressed:  imageui.NewNineSliceColor(config.ColorButtonHover),
			Disabled: imageui.NewNineSliceColor(config.ColorButtonOff),
		},
		buttonText: &widget.ButtonTextColor{
			Idle:     config.ColorText,
			Disabled: config.ColorTextOff,
		},
		panelImage: imageui.NewNineSliceColor(config.ColorPanel),
	}
}

// text 创建居中的文本控件
func (k *uiKit) text(label string, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, &k.face, clr),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

// button 创建带文字的按钮
func (k *uiKit) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(k.buttonImage),
		widget.ButtonOpts.Text(label, &k.face, k.buttonText),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 32),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// panel 创建带背景的竖向面板，由锚点布局按 h/v 放置
func (k *uiKit) panel(h, v widget.AnchorLayoutPosition) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(k.panelImage),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: h, VerticalPosition: v}),
		),
	)
}

// newUI 用锚点布局的根容器包装若干面板
func newUI(children ...widget.PreferredSizeLocateableWidget) *ebitenui.UI {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	for _, child := range children {
		root.AddChild(child)
	}
	return &ebitenui.UI{Container: root}
}

// setVisible 切换控件显示
func setVisible(w widget.HasWidget, visible bool) {
	if visible {
		w.GetWidget().Visibility = widget.Visibility_Show
	} else {
		w.GetWidget().Visibility = widget.Visibility_Hide
	}
}

// setEnabled 切换按钮可用状态
func setEnabled(btn *widget.Button, enabled bool) {
	btn.GetWidget().Disabled = !enabled
}

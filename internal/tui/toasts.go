package tui

import (
	lipgloss "github.com/charmbracelet/lipgloss/v2"

	"github.com/goddevils777/tgbot3-0-sub001/internal/core/notify"
)

// overlayToasts stacks the live toasts in the top-right corner of the
// background content. Hiding toasts render dimmed during their removal
// transition.
func overlayToasts(background string, toasts []notify.ToastView, width int) string {
	if len(toasts) == 0 {
		return background
	}

	layers := []*lipgloss.Layer{lipgloss.NewLayer(background)}

	y := 1
	for _, t := range toasts {
		box := toastStyle(t).Render(t.Kind.Icon() + " " + t.Message)

		layer := lipgloss.NewLayer(box)
		x := width - lipgloss.Width(box) - 1
		if x < 0 {
			x = 0
		}
		layer.X(x).Y(y).Z(2)
		layers = append(layers, layer)

		y += lipgloss.Height(box)
	}

	return lipgloss.NewCompositor(layers...).Render()
}

func toastStyle(t notify.ToastView) lipgloss.Style {
	if t.Hiding {
		return toastHidingStyle
	}

	switch t.Kind {
	case notify.KindSuccess:
		return toastSuccessStyle
	case notify.KindError:
		return toastErrorStyle
	case notify.KindWarning:
		return toastWarningStyle
	default:
		return toastInfoStyle
	}
}

package view

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/d-becker/raspberry/ui/images"
)

const (
	// Max pane dimensions; frames are scaled proportionally to fit.
	maxPaneW = 480
	maxPaneH = 360
)

// RootView composes the monitor window: a live pane showing the current
// region of interest, an alert pane frozen on the frame that last triggered
// motion, and a status row with toggle/exit controls.
type RootView struct {
	logger *slog.Logger

	livePane  *LabelWidget
	alertPane *LabelWidget
	alertInfo *LabelWidget
	status    *LabelWidget
	session   *LabelWidget

	livePhoto  *Img
	alertPhoto *Img

	afterID string
}

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout. onToggle starts/stops monitoring; onExit tears
// the application down. Call before Wait.
func (rv *RootView) Build(onToggle, onExit func()) {
	if rv == nil {
		return
	}
	App.WmTitle("Motion Monitor")
	WmProtocol(App, "WM_DELETE_WINDOW", func() { rv.exit(onExit) })

	Grid(Label(Txt("Normal image")), Row(0), Column(0), Padx("0.4m"), Pady("0.3m"))
	Grid(Label(Txt("Alert")), Row(0), Column(1), Padx("0.4m"), Pady("0.3m"))

	placeholder := images.EncodePNG(image.NewGray(image.Rect(0, 0, 290, 240)))
	rv.livePhoto = NewPhoto(Data(placeholder))
	rv.alertPhoto = NewPhoto(Data(placeholder))
	rv.livePane = Label(Image(rv.livePhoto), Borderwidth(1), Relief("sunken"))
	rv.alertPane = Label(Image(rv.alertPhoto), Borderwidth(1), Relief("sunken"))
	Grid(rv.livePane, Row(1), Column(0), Padx("0.4m"), Pady("0.4m"))
	Grid(rv.alertPane, Row(1), Column(1), Padx("0.4m"), Pady("0.4m"))

	rv.alertInfo = Label(Txt("No motion yet"), Borderwidth(1), Relief("ridge"))
	Grid(rv.alertInfo, Row(2), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	rv.status = Label(Txt("Status: stopped"), Borderwidth(1), Relief("ridge"))
	Grid(rv.status, Row(3), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.session = Label(Txt("Session: 0s"), Borderwidth(1), Relief("ridge"))
	Grid(rv.session, Row(3), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(4), Column(0), Columnspan(2), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	toggleBtn := Button(Txt("Toggle Monitoring"), Command(onToggle))
	Grid(toggleBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(func() { rv.exit(onExit) }))
	Grid(exitBtn, In(btnFrame), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
}

// UpdateLive replaces the live pane image.
func (rv *RootView) UpdateLive(img image.Image) {
	if rv == nil || rv.livePane == nil || img == nil {
		return
	}
	rv.livePhoto = replacePhoto(rv.livePane, rv.livePhoto, img)
}

// UpdateAlert freezes the alert pane on img and shows its score and time.
func (rv *RootView) UpdateAlert(img image.Image, score float64, at time.Time) {
	if rv == nil || rv.alertPane == nil || img == nil {
		return
	}
	rv.alertPhoto = replacePhoto(rv.alertPane, rv.alertPhoto, img)
	if rv.alertInfo != nil {
		rv.alertInfo.Configure(Txt(fmt.Sprintf("Motion at %s, score %.4f", at.Format("15:04:05"), score)))
	}
}

// SetStatus updates the status label.
func (rv *RootView) SetStatus(text string) {
	if rv == nil || rv.status == nil {
		return
	}
	rv.status.Configure(Txt("Status: " + text))
}

// SetSession updates the session duration label.
func (rv *RootView) SetSession(session, total time.Duration) {
	if rv == nil || rv.session == nil {
		return
	}
	rv.session.Configure(Txt(fmt.Sprintf("Session: %s (total %s)",
		session.Truncate(time.Second), total.Truncate(time.Second))))
}

// After schedules fn on the Tk event loop after d, replacing any pending
// schedule. The UI tick loop re-arms itself through this.
func (rv *RootView) After(d time.Duration, fn func()) {
	if rv == nil {
		return
	}
	rv.afterID = TclAfter(d, fn)
}

// Wait enters the Tk main loop and blocks until the window is destroyed.
func (rv *RootView) Wait() { App.Wait() }

func (rv *RootView) exit(onExit func()) {
	if rv.afterID != "" {
		TclAfterCancel(rv.afterID)
	}
	if onExit != nil {
		onExit()
	}
	Destroy(App)
}

// replacePhoto swaps the photo shown by a label, disposing the old Tk image
// so off-screen pixel data does not accumulate.
func replacePhoto(pane *LabelWidget, old *Img, img image.Image) *Img {
	scaled := images.ScaleToFit(img, maxPaneW, maxPaneH)
	next := NewPhoto(Data(images.EncodePNG(scaled)))
	if old != nil {
		old.Delete()
	}
	pane.Configure(Image(next))
	return next
}

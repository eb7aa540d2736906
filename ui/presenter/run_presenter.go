package presenter

// RunModel provides running-state access.
type RunModel interface {
	Active() bool
	SetActive(bool)
}

// MonitorLifecycle narrows what the presenter needs from the scheduler.
type MonitorLifecycle interface {
	Start()
	Stop()
}

// StatusView updates UI elements affected by toggling the monitor.
type StatusView interface {
	SetStatus(text string)
}

// RunPresenter owns presentation logic for starting and stopping the monitor.
type RunPresenter struct {
	model  RunModel
	runner MonitorLifecycle
	view   StatusView
}

func NewRunPresenter(model RunModel, runner MonitorLifecycle, view StatusView) *RunPresenter {
	return &RunPresenter{model: model, runner: runner, view: view}
}

// Enable starts the monitor runner. Idempotent.
func (p *RunPresenter) Enable() {
	if p == nil || p.model == nil || p.runner == nil || p.view == nil {
		return
	}
	if p.model.Active() {
		return
	}
	p.runner.Start()
	p.model.SetActive(true)
	p.view.SetStatus("monitoring")
}

// Disable stops the monitor runner. Idempotent.
func (p *RunPresenter) Disable() {
	if p == nil || p.model == nil || p.runner == nil || p.view == nil {
		return
	}
	if !p.model.Active() {
		return
	}
	p.runner.Stop()
	p.model.SetActive(false)
	p.view.SetStatus("stopped")
}

// Toggle flips running state delegating to Enable/Disable.
func (p *RunPresenter) Toggle() {
	if p == nil || p.model == nil {
		return
	}
	if p.model.Active() {
		p.Disable()
		return
	}
	p.Enable()
}

// Package tui is the terminal front end of the portal. It follows the Elm
// architecture: one model, messages in, a view function out. All submission
// logic lives in the workflow controller; this package only renders state
// and translates key presses into controller calls.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/dst-portal/upload-portal/internal/models"
	progresscore "github.com/dst-portal/upload-portal/internal/progress"
	"github.com/dst-portal/upload-portal/internal/workflow"
	"github.com/dst-portal/upload-portal/pkg/i18n"
)

// appState represents which screen is showing.
type appState int

const (
	stateProjectType appState = iota
	stateForm
	stateExistingProject
	stateUploading
	stateConfirmation
)

// ProgressMsg carries a presenter status into the update loop.
type ProgressMsg struct {
	Status progresscore.Status
}

type submitFinishedMsg struct {
	ok bool
}

// submitRequestedMsg is emitted by the form when the submit button is
// activated, so the enter key and ctrl+s share one path.
type submitRequestedMsg struct{}

// menuItem implements list.Item for the project-type menu.
type menuItem struct {
	title string
	desc  string
	pt    models.ProjectType
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// App is the top-level bubbletea model.
type App struct {
	ctrl   *workflow.Controller
	tr     *i18n.Translator
	log    *zap.Logger
	styles styleSet

	state  appState
	menu   list.Model
	form   *formView
	bar    progress.Model
	spin   spinner.Model
	status progresscore.Status

	width  int
	height int
}

func NewApp(ctrl *workflow.Controller, tr *i18n.Translator, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	styles := newStyleSet()

	items := []list.Item{
		menuItem{
			title: tr.T("projectType.new"),
			desc:  tr.T("projectType.new.desc"),
			pt:    models.ProjectTypeNew,
		},
		menuItem{
			title: tr.T("projectType.existing"),
			desc:  tr.T("projectType.existing.desc"),
			pt:    models.ProjectTypeExisting,
		},
	}
	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = tr.T("projectType.question")
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)

	bar := progress.New(progress.WithDefaultGradient())
	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = styles.phaseTitle

	return &App{
		ctrl:   ctrl,
		tr:     tr,
		log:    log,
		styles: styles,
		state:  stateProjectType,
		menu:   menu,
		bar:    bar,
		spin:   spin,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.menu.SetSize(max(0, msg.Width-6), max(0, msg.Height-8))
		a.bar.Width = max(20, min(msg.Width-10, 60))
		if a.form != nil {
			a.form.setSize(msg.Width, msg.Height)
		}
		return a, nil

	case ProgressMsg:
		a.status = msg.Status
		if !msg.Status.Terminal {
			return a, a.bar.SetPercent(float64(msg.Status.Phase.Percent) / 100)
		}
		if msg.Status.Failed {
			// Stay on the upload screen showing the classified error
			// until the user dismisses it.
			return a, nil
		}
		return a, a.bar.SetPercent(1)

	case submitRequestedMsg:
		if a.state == stateForm || a.state == stateExistingProject {
			return a.beginSubmit()
		}
		return a, nil

	case submitFinishedMsg:
		if msg.ok {
			a.state = stateConfirmation
			return a, nil
		}
		if a.state == stateUploading && len(a.ctrl.Errors()) > 0 && !a.status.Terminal {
			// Validation stopped the submit before the presenter started.
			a.state = a.formState()
		}
		return a, nil

	case progress.FrameMsg:
		model, cmd := a.bar.Update(msg)
		a.bar = model.(progress.Model)
		return a, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		if a.state == stateUploading {
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a.routeToScreen(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.state {
	case stateProjectType:
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "enter":
			item, ok := a.menu.SelectedItem().(menuItem)
			if !ok {
				return a, nil
			}
			a.ctrl.SelectProjectType(item.pt)
			a.form = newFormView(a.ctrl, a.tr, a.styles, item.pt)
			a.form.setSize(a.width, a.height)
			a.state = a.formState()
			return a, a.form.focusCmd()
		}

	case stateForm, stateExistingProject:
		switch msg.String() {
		case "esc":
			if a.form != nil && a.form.inAttach() {
				break
			}
			a.ctrl.Back()
			a.form = nil
			a.state = stateProjectType
			return a, nil
		case "ctrl+s":
			return a.beginSubmit()
		}

	case stateUploading:
		if a.status.Terminal && a.status.Failed {
			switch msg.String() {
			case "esc", "enter":
				a.ctrl.DismissError()
				a.status = progresscore.Status{}
				a.state = a.formState()
				return a, nil
			}
		}
		return a, nil

	case stateConfirmation:
		switch msg.String() {
		case "n", "enter":
			a.ctrl.NewUpload()
			a.form = nil
			a.status = progresscore.Status{}
			a.state = stateProjectType
			return a, nil
		case "q":
			return a, tea.Quit
		}
		return a, nil
	}

	return a.routeToScreen(msg)
}

func (a *App) routeToScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.state {
	case stateProjectType:
		var cmd tea.Cmd
		a.menu, cmd = a.menu.Update(msg)
		return a, cmd
	case stateForm, stateExistingProject:
		if a.form != nil {
			return a, a.form.update(msg)
		}
	}
	return a, nil
}

// beginSubmit enforces the legal confirmation, then hands off to the
// controller on a background command so the update loop stays responsive.
func (a *App) beginSubmit() (tea.Model, tea.Cmd) {
	if a.ctrl.IsSubmitting() {
		return a, nil
	}
	if a.form != nil && a.form.mode == models.ProjectTypeNew && !a.form.legalConfirmed {
		errs := append([]string{a.tr.T("error.legalRequired")}, a.ctrl.Validate()...)
		a.form.localErrors = errs
		return a, nil
	}
	if a.form != nil {
		a.form.localErrors = nil
		a.form.flushInputs()
	}
	a.state = stateUploading
	a.status = progresscore.Status{}
	return a, tea.Batch(a.spin.Tick, func() tea.Msg {
		ok := a.ctrl.Submit(context.Background())
		return submitFinishedMsg{ok: ok}
	})
}

func (a *App) formState() appState {
	if a.form != nil && a.form.mode == models.ProjectTypeExisting {
		return stateExistingProject
	}
	return stateForm
}

func (a *App) View() string {
	var content string
	switch a.state {
	case stateProjectType:
		content = a.viewProjectType()
	case stateForm, stateExistingProject:
		if a.form != nil {
			content = a.form.view()
		}
	case stateUploading:
		content = a.viewUploading()
	case stateConfirmation:
		content = a.viewConfirmation()
	}
	header := a.styles.header.Render(a.tr.T("projectType.title"))
	return lipgloss.JoinVertical(lipgloss.Left, header, content)
}

func (a *App) viewProjectType() string {
	info := a.styles.hint.Render(a.tr.T("projectType.info"))
	return lipgloss.JoinVertical(lipgloss.Left, a.menu.View(), info)
}

func (a *App) viewUploading() string {
	if a.status.Terminal && a.status.Failed {
		lines := []string{
			a.styles.errorTitle.Render(a.tr.T("error.title")),
			a.styles.errorLine.Render(a.status.Message),
			a.styles.hint.Render("Esc → " + a.tr.T("form.back")),
		}
		return a.styles.box.Render(strings.Join(lines, "\n"))
	}

	phase := a.status.Phase
	if phase.Key == "" {
		phase = progresscore.Phases()[0]
	}
	title := a.tr.T("upload.phase." + phase.Key)
	desc := a.tr.Tf("upload.phase."+phase.Key+".desc", map[string]string{
		"count": strconv.Itoa(a.status.FileCount),
	})
	lines := []string{
		a.spin.View() + a.styles.phaseTitle.Render(title),
		a.styles.phaseDesc.Render(desc),
		"",
		a.bar.View(),
		a.styles.hint.Render(fmt.Sprintf("%d%%", phase.Percent)),
	}
	return a.styles.box.Render(strings.Join(lines, "\n"))
}

func (a *App) viewConfirmation() string {
	result := a.ctrl.Result()
	state := a.ctrl.Store().State()

	lines := []string{
		a.styles.success.Render(a.tr.T("confirmation.success")),
		"",
		a.tr.T("confirmation.message"),
		"",
		a.styles.section.Render(a.tr.T("confirmation.details")),
	}
	if state != nil {
		lines = append(lines,
			fmt.Sprintf("%s: %s", a.tr.T("confirmation.projectTitle"), state.ProjectTitle),
			fmt.Sprintf("%s: %s", a.tr.T("confirmation.email"), state.Email),
		)
	}
	if result != nil {
		// The server timestamp is shown exactly as received.
		lines = append(lines, fmt.Sprintf("%s: %s", a.tr.T("confirmation.timestamp"), result.Timestamp))
	}
	if state != nil {
		lines = append(lines, "", a.tr.Tf("confirmation.emailSent", map[string]string{"email": state.Email}))
	}
	lines = append(lines, "", a.styles.hint.Render("n/Enter → "+a.tr.T("confirmation.newUpload")+"    q → quit"))
	return a.styles.box.Render(strings.Join(lines, "\n"))
}

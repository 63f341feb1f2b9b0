package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dst-portal/upload-portal/internal/models"
	"github.com/dst-portal/upload-portal/internal/workflow"
	"github.com/dst-portal/upload-portal/pkg/i18n"
)

// focusKind identifies what a focus slot points at.
type focusKind int

const (
	focusInput focusKind = iota
	focusToggle
	focusCategory
	focusSubmit
)

type focusSlot struct {
	kind focusKind
	// input name, toggle name or category index depending on kind
	name string
	idx  int
}

const (
	inputEmail   = "email"
	inputName    = "name"
	inputTitle   = "title"
	inputDetails = "details"

	toggleProspective = "prospective"
	toggleLegal       = "legal"
)

// formView renders the new-project and existing-project forms. Field values
// are pushed into the store on every keystroke so the controller always
// validates what is on screen.
type formView struct {
	ctrl   *workflow.Controller
	tr     *i18n.Translator
	styles styleSet
	mode   models.ProjectType

	inputs map[string]*textinput.Model
	slots  []focusSlot
	focus  int

	legalConfirmed bool
	localErrors    []string

	// attach state: typing a path for one category
	attachFor   int
	attachInput textinput.Model
	attachErr   string

	width  int
	height int
}

func newFormView(ctrl *workflow.Controller, tr *i18n.Translator, styles styleSet, mode models.ProjectType) *formView {
	f := &formView{
		ctrl:      ctrl,
		tr:        tr,
		styles:    styles,
		mode:      mode,
		inputs:    map[string]*textinput.Model{},
		attachFor: -1,
	}

	newInput := func(name, placeholder string, limit int) {
		in := textinput.New()
		in.Prompt = "> "
		in.Placeholder = placeholder
		in.CharLimit = limit
		f.inputs[name] = &in
	}
	newInput(inputEmail, tr.T("form.email"), 256)
	newInput(inputTitle, tr.T("form.projectTitle"), 256)
	if mode != models.ProjectTypeExisting {
		newInput(inputName, tr.T("form.uploaderName"), 256)
		newInput(inputDetails, tr.T("form.projectDetails"), 1024)
	}

	f.slots = f.buildSlots()

	attach := textinput.New()
	attach.Prompt = "> "
	attach.CharLimit = 1024
	f.attachInput = attach

	f.applyFocus()
	return f
}

func (f *formView) buildSlots() []focusSlot {
	slots := []focusSlot{{kind: focusInput, name: inputEmail}}
	if f.mode != models.ProjectTypeExisting {
		slots = append(slots, focusSlot{kind: focusInput, name: inputName})
	}
	slots = append(slots, focusSlot{kind: focusInput, name: inputTitle})
	if f.mode != models.ProjectTypeExisting {
		slots = append(slots,
			focusSlot{kind: focusInput, name: inputDetails},
			focusSlot{kind: focusToggle, name: toggleProspective},
		)
	}
	for i := range f.ctrl.Store().Categories() {
		slots = append(slots, focusSlot{kind: focusCategory, idx: i})
	}
	if f.mode != models.ProjectTypeExisting {
		slots = append(slots, focusSlot{kind: focusToggle, name: toggleLegal})
	}
	slots = append(slots, focusSlot{kind: focusSubmit})
	return slots
}

func (f *formView) setSize(width, height int) {
	f.width = width
	f.height = height
	for _, in := range f.inputs {
		in.Width = max(20, min(width-12, 60))
	}
	f.attachInput.Width = max(20, min(width-12, 60))
}

func (f *formView) inAttach() bool { return f.attachFor >= 0 }

func (f *formView) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (f *formView) applyFocus() {
	for _, in := range f.inputs {
		in.Blur()
	}
	slot := f.slots[f.focus]
	if slot.kind == focusInput {
		f.inputs[slot.name].Focus()
	}
}

// flushInputs pushes every field into the store. Called before submit as a
// safety net; per-keystroke sync already keeps them aligned.
func (f *formView) flushInputs() {
	store := f.ctrl.Store()
	store.SetEmail(strings.TrimSpace(f.inputs[inputEmail].Value()))
	store.SetProjectTitle(strings.TrimSpace(f.inputs[inputTitle].Value()))
	if in, ok := f.inputs[inputName]; ok {
		store.SetUploaderName(strings.TrimSpace(in.Value()))
	}
	if in, ok := f.inputs[inputDetails]; ok {
		store.SetProjectDetails(strings.TrimSpace(in.Value()))
	}
}

func (f *formView) update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		if f.inAttach() {
			return f.updateAttach(key)
		}
		switch key.String() {
		case "tab", "down":
			f.focus = (f.focus + 1) % len(f.slots)
			f.applyFocus()
			return nil
		case "shift+tab", "up":
			f.focus = (f.focus - 1 + len(f.slots)) % len(f.slots)
			f.applyFocus()
			return nil
		case "enter", " ":
			if cmd, handled := f.activate(key.String()); handled {
				return cmd
			}
		case "x":
			if slot := f.slots[f.focus]; slot.kind == focusCategory {
				cats := f.ctrl.Store().Categories()
				if n := len(cats[slot.idx].Files); n > 0 {
					f.ctrl.Store().RemoveFile(cats[slot.idx].Key, n-1)
				}
				return nil
			}
		}
	}

	// Route remaining messages to the focused text input.
	slot := f.slots[f.focus]
	if slot.kind == focusInput {
		in := f.inputs[slot.name]
		updated, cmd := in.Update(msg)
		*in = updated
		f.syncInput(slot.name)
		return cmd
	}
	return nil
}

// activate handles enter/space on the focused slot. Returns handled=false
// when the key should fall through to the text input (space inside text).
func (f *formView) activate(key string) (tea.Cmd, bool) {
	slot := f.slots[f.focus]
	switch slot.kind {
	case focusInput:
		if key == "enter" {
			f.focus = (f.focus + 1) % len(f.slots)
			f.applyFocus()
			return nil, true
		}
		return nil, false
	case focusToggle:
		switch slot.name {
		case toggleProspective:
			state := f.ctrl.Store().State()
			f.ctrl.Store().SetProspectiveStudy(!state.IsProspectiveStudy)
		case toggleLegal:
			f.legalConfirmed = !f.legalConfirmed
		}
		return nil, true
	case focusCategory:
		if key == "enter" {
			f.attachFor = slot.idx
			f.attachErr = ""
			f.attachInput.SetValue("")
			f.attachInput.Focus()
			return textinput.Blink, true
		}
		return nil, true
	case focusSubmit:
		if key == "enter" {
			return func() tea.Msg { return submitRequestedMsg{} }, true
		}
		return nil, true
	}
	return nil, true
}

func (f *formView) updateAttach(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		f.attachFor = -1
		f.attachInput.Blur()
		return nil
	case "enter":
		path := strings.TrimSpace(f.attachInput.Value())
		if path == "" {
			f.attachFor = -1
			f.attachInput.Blur()
			return nil
		}
		handle, err := models.NewFileHandle(path)
		if err != nil {
			f.attachErr = err.Error()
			return nil
		}
		cats := f.ctrl.Store().Categories()
		f.ctrl.Store().AddFiles(cats[f.attachFor].Key, handle)
		f.attachFor = -1
		f.attachInput.Blur()
		return nil
	}
	updated, cmd := f.attachInput.Update(key)
	f.attachInput = updated
	return cmd
}

func (f *formView) syncInput(name string) {
	value := strings.TrimSpace(f.inputs[name].Value())
	store := f.ctrl.Store()
	switch name {
	case inputEmail:
		store.SetEmail(value)
	case inputName:
		store.SetUploaderName(value)
	case inputTitle:
		store.SetProjectTitle(value)
	case inputDetails:
		store.SetProjectDetails(value)
	}
}

func (f *formView) view() string {
	var sections []string

	if f.mode == models.ProjectTypeExisting {
		sections = append(sections, f.styles.section.Render(f.tr.T("existingProject.title")))
	} else {
		sections = append(sections, f.styles.section.Render(f.tr.T("form.baseData")))
	}

	sections = append(sections, f.renderErrors()...)

	for i, slot := range f.slots {
		focused := i == f.focus
		switch slot.kind {
		case focusInput:
			sections = append(sections, f.renderInput(slot.name, focused))
		case focusToggle:
			sections = append(sections, f.renderToggle(slot.name, focused))
		case focusCategory:
			if slot.idx == 0 {
				sections = append(sections, f.styles.section.Render(f.tr.T("form.documents")))
			}
			sections = append(sections, f.renderCategory(slot.idx, focused))
		case focusSubmit:
			sections = append(sections, "", f.renderSubmit(focused))
		}
	}

	if f.inAttach() {
		sections = append(sections, "", f.renderAttach())
	}

	hint := "Tab/↑↓ → move    Enter → attach file    x → remove file    Ctrl+S → submit    Esc → " + f.tr.T("form.back")
	sections = append(sections, f.styles.hint.Render(hint))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (f *formView) renderErrors() []string {
	errs := f.localErrors
	if len(errs) == 0 {
		errs = f.ctrl.Errors()
	}
	if len(errs) == 0 {
		return nil
	}
	lines := []string{f.styles.errorTitle.Render(f.tr.T("error.title"))}
	for _, e := range errs {
		lines = append(lines, f.styles.errorLine.Render("• "+e))
	}
	return []string{f.styles.box.Render(strings.Join(lines, "\n"))}
}

func (f *formView) renderInput(name string, focused bool) string {
	label := f.labelFor(name)
	style := f.styles.label
	if focused {
		style = f.styles.labelFocused
	}
	return style.Render(label) + "\n" + f.inputs[name].View()
}

func (f *formView) labelFor(name string) string {
	switch name {
	case inputEmail:
		return f.tr.T("form.email") + " " + f.styles.required.Render(f.tr.T("form.required"))
	case inputName:
		return f.tr.T("form.uploaderName")
	case inputTitle:
		return f.tr.T("form.projectTitle") + " " + f.styles.required.Render(f.tr.T("form.required"))
	case inputDetails:
		return f.tr.T("form.projectDetails")
	}
	return name
}

func (f *formView) renderToggle(name string, focused bool) string {
	var on bool
	var label string
	switch name {
	case toggleProspective:
		on = f.ctrl.Store().State().IsProspectiveStudy
		label = f.tr.T("form.prospectiveStudy")
	case toggleLegal:
		on = f.legalConfirmed
		label = f.tr.T("form.legalConfirmation") + " " + f.styles.required.Render(f.tr.T("form.required"))
	}
	mark := "[ ]"
	style := f.styles.toggleOff
	if on {
		mark = "[x]"
		style = f.styles.toggleOn
	}
	line := style.Render(mark) + " " + label
	if focused {
		return f.styles.labelFocused.Render("→ ") + line
	}
	return "  " + line
}

func (f *formView) renderCategory(idx int, focused bool) string {
	cats := f.ctrl.Store().Categories()
	cat := cats[idx]
	state := f.ctrl.Store().State()

	label := f.tr.T(cat.Label)
	if cat.IsRequired(state) {
		label += " " + f.styles.required.Render(f.tr.T("form.required"))
	}
	style := f.styles.label
	if focused {
		style = f.styles.labelFocused
	}

	lines := []string{style.Render(label)}
	if len(cat.Files) == 0 {
		lines = append(lines, f.styles.fileLine.Render("  "+f.tr.T("submit.noFiles")))
	}
	for _, file := range cat.Files {
		lines = append(lines, f.styles.fileLine.Render(fmt.Sprintf("  • %s (%s)", file.Name, formatSize(file.SizeBytes))))
	}
	return strings.Join(lines, "\n")
}

func (f *formView) renderSubmit(focused bool) string {
	total := f.ctrl.Store().TotalFiles()
	noun := f.tr.T("submit.files")
	if total == 1 {
		noun = f.tr.T("submit.file")
	}
	counter := fmt.Sprintf("%d %s %s", total, noun, f.tr.T("submit.filesReady"))

	button := f.tr.T("submit.button")
	if f.ctrl.IsSubmitting() {
		button = f.tr.T("submit.uploading")
	}
	style := f.styles.label
	if focused {
		style = f.styles.labelFocused
	}
	lines := []string{
		f.styles.hint.Render(counter),
		style.Render("[ " + button + " ]  (Ctrl+S)"),
		f.styles.hint.Render(f.tr.T("submit.confirmation")),
	}
	return strings.Join(lines, "\n")
}

func (f *formView) renderAttach() string {
	cats := f.ctrl.Store().Categories()
	label := f.tr.T(cats[f.attachFor].Label)
	lines := []string{
		f.styles.labelFocused.Render(label),
		f.attachInput.View(),
	}
	if f.attachErr != "" {
		lines = append(lines, f.styles.errorLine.Render(f.attachErr))
	}
	lines = append(lines, f.styles.hint.Render("Enter → attach    Esc → cancel"))
	return f.styles.box.Render(strings.Join(lines, "\n"))
}

func formatSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}

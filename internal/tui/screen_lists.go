// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

const listsHotKeys = "a: добавить │ e: переим. │ ctrl+d: уд. │ enter: открыть │ s: синхр. │ r: обновить │ c: копир. │ v: версия │ q: выход"

type listsModel struct {
	d *screenDeps

	idx     int
	status  string
	errMsg  string
	overlay *errorOverlayModel

	prompt      promptKind
	input       textinput.Model
	promptForID models.ID

	confirm *confirmModel
	target  models.ID

	syncing bool
	spinner spinner.Model
}

func newListsModel(d *screenDeps) listsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listsModel{d: d, spinner: s}
}

func (m listsModel) Init() tea.Cmd {
	return m.cmdRefresh()
}

func (m listsModel) capturesInput() bool {
	return m.prompt != promptNone
}

func (m listsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case actionDoneMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.status = outcomeStatus(msg.action, msg.outcome)
		m.errMsg = ""
		return m, nil
	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = syncStatus(msg.report)
		return m, nil
	case refreshDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		}
		return m, nil
	case spinner.TickMsg:
		if !m.syncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.prompt != promptNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m listsModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm = nil
			return m, m.cmdDelete(m.target)
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	if m.prompt != promptNone {
		return m.updatePrompt(msg)
	}

	lists := m.d.state.Lists()
	m.idx = clampCursor(m.idx, len(lists))

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(lists)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.add):
		m.prompt = promptNewList
		m.input = newPromptInput("", validators.MaxNameLength)
		return m, textinput.Blink
	case key.Matches(msg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = "Синхронизация..."
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdSync())
	case key.Matches(msg, keys.refresh):
		return m, m.cmdRefresh()
	}

	if len(lists) == 0 {
		return m, nil
	}
	list := lists[m.idx]

	switch {
	case key.Matches(msg, keys.enter):
		return m, func() tea.Msg {
			return NavigateTo{Page: pageItems, Payload: openListMsg{listID: list.ID}}
		}
	case key.Matches(msg, keys.edit):
		m.prompt = promptRenameList
		m.promptForID = list.ID
		m.input = newPromptInput(list.Name, validators.MaxNameLength)
		return m, textinput.Blink
	case key.Matches(msg, keys.delete):
		m.confirm = &confirmModel{message: list.Name}
		m.target = list.ID
	case key.Matches(msg, keys.copy):
		if err := clipboard.WriteAll(list.Name); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Скопировано"
	}

	return m, nil
}

func (m listsModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.prompt = promptNone
		return m, nil
	case key.Matches(msg, keys.enter):
		value := strings.TrimSpace(m.input.Value())
		if value == "" {
			m.errMsg = "Название списка не может быть пустым"
			return m, nil
		}
		kind := m.prompt
		m.prompt = promptNone
		m.errMsg = ""
		if kind == promptRenameList {
			return m, m.cmdRename(m.promptForID, value)
		}
		return m, m.cmdCreate(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m listsModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}
	if m.confirm != nil {
		return m.confirm.View()
	}

	var out strings.Builder

	header := connectivityBadge(m.d.monitor.Online())
	if n := m.d.state.PendingCount(); n > 0 {
		header += pendingStyle.Render(fmt.Sprintf("  в очереди: %d", n))
	}
	if m.syncing {
		header += "  " + m.spinner.View()
	}
	out.WriteString(header + "\n\n")

	if m.prompt != promptNone {
		out.WriteString(m.prompt.label() + ": [" + m.input.View() + "]\n\n")
	}
	if m.errMsg != "" {
		out.WriteString(errorStyle.Render("Ошибка: "+m.errMsg) + "\n")
	}
	if m.status != "" {
		out.WriteString("Статус: " + m.status + "\n")
	}

	lists := m.d.state.Lists()
	idx := clampCursor(m.idx, len(lists))
	if len(lists) == 0 {
		out.WriteString("\nСписков нет\n")
	} else {
		out.WriteString("\n  │ Список                           │ Задач │ Готово\n")
		out.WriteString("──┼──────────────────────────────────┼───────┼───────\n")
		for i, list := range lists {
			cursor := " "
			if i == idx {
				cursor = ">"
			}
			done := 0
			for _, item := range list.Todos {
				if item.Completed {
					done++
				}
			}
			out.WriteString(fmt.Sprintf("%s%s│ %-32s │ %5d │ %5d\n",
				cursor,
				pendingMark(m.d.state.IsListPending(list.ID)),
				fitText(list.Name, 32),
				len(list.Todos),
				done,
			))
		}
	}

	hotKeys := listsHotKeys
	if m.prompt != promptNone {
		hotKeys = "enter: сохранить │ esc: отмена"
	}
	return renderPage("СПИСКИ ДЕЛ", strings.TrimRight(out.String(), "\n"), hotKeys)
}

func (m listsModel) cmdCreate(name string) tea.Cmd {
	ctx, svc := m.d.ctx, m.d.services.ListService
	return func() tea.Msg {
		_, outcome, err := svc.Create(ctx, name)
		return actionDoneMsg{action: "Список создан", outcome: outcome, err: err}
	}
}

func (m listsModel) cmdRename(id models.ID, name string) tea.Cmd {
	ctx, svc := m.d.ctx, m.d.services.ListService
	return func() tea.Msg {
		outcome, err := svc.Rename(ctx, id, name)
		return actionDoneMsg{action: "Список переименован", outcome: outcome, err: err}
	}
}

func (m listsModel) cmdDelete(id models.ID) tea.Cmd {
	ctx, svc := m.d.ctx, m.d.services.ListService
	return func() tea.Msg {
		outcome, err := svc.Delete(ctx, id)
		return actionDoneMsg{action: "Список удалён", outcome: outcome, err: err}
	}
}

func (m listsModel) cmdSync() tea.Cmd {
	ctx, svcs := m.d.ctx, m.d.services
	return func() tea.Msg {
		report, err := svcs.SyncService.ProcessQueue(ctx)
		if err != nil {
			return syncDoneMsg{report: report, err: err}
		}
		return syncDoneMsg{report: report, err: svcs.SnapshotService.RefreshLists(ctx)}
	}
}

func (m listsModel) cmdRefresh() tea.Cmd {
	if !m.d.monitor.Online() {
		return nil
	}
	ctx, svc := m.d.ctx, m.d.services.SnapshotService
	return func() tea.Msg {
		return refreshDoneMsg{err: svc.RefreshLists(ctx)}
	}
}

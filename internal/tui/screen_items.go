// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

const itemsHotKeys = "a: добавить │ e: изм. │ space: отметить │ t/T: все готово/не готово │ ctrl+d: уд. │ r: обновить │ c: копир. │ esc: назад"

type itemsModel struct {
	d *screenDeps

	listID  models.ID
	idx     int
	status  string
	errMsg  string
	overlay *errorOverlayModel

	prompt      promptKind
	input       textinput.Model
	promptForID models.ID

	confirm *confirmModel
	target  models.ID
}

func newItemsModel(d *screenDeps) itemsModel {
	return itemsModel{d: d}
}

func (m itemsModel) Init() tea.Cmd {
	return nil
}

func (m itemsModel) capturesInput() bool {
	return m.prompt != promptNone
}

func (m itemsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openListMsg:
		m = newItemsModel(m.d)
		m.listID = msg.listID
		m.d.watcher.Watch(m.d.ctx, msg.listID)
		return m, m.cmdRefresh()
	case actionDoneMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.status = outcomeStatus(msg.action, msg.outcome)
		m.errMsg = ""
		return m, nil
	case refreshDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		}
		return m, nil
	case listEventMsg:
		if msg.event.ListID != m.listID {
			return m, nil
		}
		switch msg.event.Event {
		case models.EventToggleCompleteDone:
			m.status = "Все задачи обновлены"
		case models.EventToggleCompleteError:
			m.errMsg = "Не удалось обновить задачи: " + msg.event.Error
		}
		return m, m.cmdHandleEvent(msg.event)
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

func (m itemsModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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

	list, ok := m.d.state.List(m.listID)
	if !ok {
		// список удалили, пока он был открыт
		m.d.watcher.Stop()
		return m, navigate(pageLists)
	}
	items := list.Todos
	m.idx = clampCursor(m.idx, len(items))

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.d.watcher.Stop()
		return m, navigate(pageLists)
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.add):
		m.prompt = promptNewItem
		m.input = newPromptInput("", validators.MaxDescriptionLength)
		return m, textinput.Blink
	case key.Matches(msg, keys.refresh):
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.completeAll):
		return m, m.cmdCompleteAll(true)
	case key.Matches(msg, keys.resetAll):
		return m, m.cmdCompleteAll(false)
	}

	if len(items) == 0 {
		return m, nil
	}
	item := items[m.idx]

	switch {
	case key.Matches(msg, keys.toggle):
		return m, m.cmdToggle(item.ID)
	case key.Matches(msg, keys.edit):
		m.prompt = promptEditItem
		m.promptForID = item.ID
		m.input = newPromptInput(item.Description, validators.MaxDescriptionLength)
		return m, textinput.Blink
	case key.Matches(msg, keys.delete):
		m.confirm = &confirmModel{message: item.Description}
		m.target = item.ID
	case key.Matches(msg, keys.copy):
		if err := clipboard.WriteAll(item.Description); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Скопировано"
	}

	return m, nil
}

func (m itemsModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.prompt = promptNone
		return m, nil
	case key.Matches(msg, keys.enter):
		value := strings.TrimSpace(m.input.Value())
		if value == "" {
			m.errMsg = "Описание задачи не может быть пустым"
			return m, nil
		}
		kind := m.prompt
		m.prompt = promptNone
		m.errMsg = ""
		if kind == promptEditItem {
			return m, m.cmdEdit(m.promptForID, value)
		}
		return m, m.cmdCreate(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m itemsModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}
	if m.confirm != nil {
		return m.confirm.View()
	}

	list, ok := m.d.state.List(m.listID)
	if !ok {
		return renderPage("СПИСОК", "Список не найден", "esc: назад")
	}

	var out strings.Builder
	out.WriteString(connectivityBadge(m.d.monitor.Online()))
	if m.d.state.IsListPending(list.ID) {
		out.WriteString(pendingStyle.Render("  есть неотправленные изменения"))
	}
	out.WriteString("\n\n")

	if m.prompt != promptNone {
		out.WriteString(m.prompt.label() + ": [" + m.input.View() + "]\n\n")
	}
	if m.errMsg != "" {
		out.WriteString(errorStyle.Render("Ошибка: "+m.errMsg) + "\n")
	}
	if m.status != "" {
		out.WriteString("Статус: " + m.status + "\n")
	}

	idx := clampCursor(m.idx, len(list.Todos))
	if len(list.Todos) == 0 {
		out.WriteString("\nЗадач нет\n")
	} else {
		out.WriteString("\n")
		for i, item := range list.Todos {
			cursor := " "
			if i == idx {
				cursor = ">"
			}
			check := "[ ]"
			if item.Completed {
				check = "[x]"
			}
			out.WriteString(fmt.Sprintf("%s%s %s %s\n",
				cursor,
				pendingMark(m.d.state.IsItemPending(list.ID, item.ID)),
				check,
				fitText(item.Description, 60),
			))
		}
	}

	hotKeys := itemsHotKeys
	if m.prompt != promptNone {
		hotKeys = "enter: сохранить │ esc: отмена"
	}
	return renderPage(strings.ToUpper(fitText(list.Name, 40)), strings.TrimRight(out.String(), "\n"), hotKeys)
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}

func (m itemsModel) cmdCreate(description string) tea.Cmd {
	ctx, svc, listID := m.d.ctx, m.d.services.ItemService, m.listID
	return func() tea.Msg {
		_, outcome, err := svc.Create(ctx, listID, description)
		return actionDoneMsg{action: "Задача добавлена", outcome: outcome, err: err}
	}
}

func (m itemsModel) cmdEdit(id models.ID, description string) tea.Cmd {
	ctx, svc, listID := m.d.ctx, m.d.services.ItemService, m.listID
	return func() tea.Msg {
		outcome, err := svc.Edit(ctx, listID, id, description)
		return actionDoneMsg{action: "Задача изменена", outcome: outcome, err: err}
	}
}

func (m itemsModel) cmdToggle(id models.ID) tea.Cmd {
	ctx, svc, listID := m.d.ctx, m.d.services.ItemService, m.listID
	return func() tea.Msg {
		outcome, err := svc.Toggle(ctx, listID, id)
		return actionDoneMsg{action: "Задача отмечена", outcome: outcome, err: err}
	}
}

func (m itemsModel) cmdDelete(id models.ID) tea.Cmd {
	ctx, svc, listID := m.d.ctx, m.d.services.ItemService, m.listID
	return func() tea.Msg {
		outcome, err := svc.Delete(ctx, listID, id)
		return actionDoneMsg{action: "Задача удалена", outcome: outcome, err: err}
	}
}

func (m itemsModel) cmdCompleteAll(completed bool) tea.Cmd {
	ctx, svc, listID := m.d.ctx, m.d.services.ItemService, m.listID
	return func() tea.Msg {
		outcome, err := svc.CompleteAll(ctx, listID, completed)
		return actionDoneMsg{action: "Запрос на отметку всех задач", outcome: outcome, err: err}
	}
}

func (m itemsModel) cmdRefresh() tea.Cmd {
	if m.listID.IsTemporary() || !m.d.monitor.Online() {
		return nil
	}
	ctx, svc, listID := m.d.ctx, m.d.services.SnapshotService, m.listID
	return func() tea.Msg {
		return refreshDoneMsg{err: svc.RefreshItems(ctx, listID)}
	}
}

func (m itemsModel) cmdHandleEvent(event models.ListEvent) tea.Cmd {
	ctx, svc := m.d.ctx, m.d.services.SnapshotService
	return func() tea.Msg {
		return refreshDoneMsg{err: svc.HandleEvent(ctx, event)}
	}
}

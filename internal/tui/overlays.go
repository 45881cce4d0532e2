// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// confirmModel asks before a deletion. message names the deleted entry.
type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(fmt.Sprintf("Удалить %q?\n\ny да    n нет", fitText(m.message, 40)))
}

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(fmt.Sprintf("%s\n\n%s\n\nenter / esc закрыть", errorStyle.Render("Ошибка"), m.message))
}

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := fmt.Sprintf("Название приложения: GoTodoKeeper\nВерсия: %s\nДата: %s\nКоммит: %s",
		info.BuildVersion(), info.BuildDate(), info.BuildCommit())
	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", body, "esc: назад")
}

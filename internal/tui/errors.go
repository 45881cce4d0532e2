// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/state"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// humanizeError turns service errors into messages for the status line.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrEmptyListName):
		return "Название списка не может быть пустым"
	case errors.Is(err, service.ErrEmptyItemDescription):
		return "Описание задачи не может быть пустым"
	case errors.Is(err, service.ErrUnknownList):
		return "Список больше не существует"
	case errors.Is(err, service.ErrUnknownItem):
		return "Задача больше не существует"
	case errors.Is(err, service.ErrDrainInProgress):
		return "Синхронизация уже идёт"
	case errors.Is(err, state.ErrPersistState):
		return "Изменение применено, но не сохранено на диск"
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}

// outcomeStatus describes where a user change ended up.
func outcomeStatus(action string, outcome models.Outcome) string {
	switch outcome {
	case models.Applied:
		return action + ": сохранено на сервере"
	case models.QueuedForRetry:
		return action + ": сохранено локально, будет отправлено позже"
	case models.TerminalResolved:
		return action + ": запись уже удалена на сервере"
	default:
		return action
	}
}

func syncStatus(report models.DrainReport) string {
	if len(report.Results) == 0 {
		return "Синхронизация завершена, очередь пуста"
	}
	return fmt.Sprintf("Синхронизация: отправлено %d, ожидают %d, снято %d",
		report.Count(models.Applied),
		report.Count(models.QueuedForRetry),
		report.Count(models.TerminalResolved),
	)
}

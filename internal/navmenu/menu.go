// Package navmenu — состояние off-screen меню навигации.
package navmenu

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEvent — событие не распознано.
var ErrUnknownEvent = errors.New("unknown menu event")

// EscapeKey — имя клавиши, закрывающей меню.
const EscapeKey = "Escape"

// Event — пользовательское действие, влияющее на меню.
type Event int

const (
	// EventButton — клик по кнопке-гамбургеру. Переключает меню и дальше не всплывает.
	EventButton Event = iota + 1
	// EventOutside — клик вне кнопки и панели меню.
	EventOutside
	// EventInside — клик внутри панели, но не по ссылке.
	EventInside
	// EventLink — клик по ссылке в меню.
	EventLink
	// EventKey — нажатие клавиши; закрывает только Escape.
	EventKey
)

var eventNames = map[string]Event{
	"button":  EventButton,
	"outside": EventOutside,
	"inside":  EventInside,
	"link":    EventLink,
	"key":     EventKey,
}

// ParseEvent — событие по имени из запроса.
func ParseEvent(name string) (Event, error) {
	if e, ok := eventNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return e, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEvent, name)
}

// State — снимок меню для отрисовки.
type State struct {
	Open         bool   `json:"open"`
	AriaExpanded string `json:"aria_expanded"`
}

// Menu — открыто/закрыто. aria-expanded выводится из того же флага,
// поэтому расходиться с ним не может.
type Menu struct {
	open bool
}

// Handle — применяет событие; key учитывается только для EventKey.
// Возвращает true, если состояние изменилось.
func (m *Menu) Handle(e Event, key string) bool {
	before := m.open
	switch e {
	case EventButton:
		m.open = !m.open
	case EventOutside, EventLink:
		m.open = false
	case EventKey:
		if key == EscapeKey {
			m.open = false
		}
	case EventInside:
	}
	return before != m.open
}

func (m *Menu) Open() bool { return m.open }

// AriaExpanded — значение атрибута aria-expanded кнопки.
func (m *Menu) AriaExpanded() string {
	if m.open {
		return "true"
	}
	return "false"
}

func (m *Menu) State() State {
	return State{Open: m.open, AriaExpanded: m.AriaExpanded()}
}

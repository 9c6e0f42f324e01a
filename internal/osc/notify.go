package osc

import (
	"strconv"
	"strings"
)

// parseNotify handles OSC 9, the simplest notification convention: the whole
// payload is the body. There is no title and no urgency field.
func parseNotify(payload string) []Action {
	if strings.TrimSpace(payload) == "" {
		return nil
	}
	return []Action{notification(nil, payload, UrgencyNormal)}
}

// parseKittyNotify handles OSC 99, kitty's structured notification format.
//
// The payload is ";"-separated fields, each either "key=value" or a bare
// token. Recognized keys are p (payload type), e (urgency), i (id, unused
// downstream), and body. With "p=title" the bare token names the title and
// the body key supplies the body; otherwise the bare token is the body and
// the notification has no title.
func parseKittyNotify(payload string) []Action {
	var (
		payloadType string
		bodyField   string
		bare        string
		urgency     = UrgencyNormal
	)

	for _, field := range strings.Split(payload, ";") {
		key, value, found := strings.Cut(field, "=")
		if !found {
			bare = field
			continue
		}
		switch key {
		case "p":
			payloadType = value
		case "e":
			if level, err := strconv.Atoi(value); err == nil {
				urgency = kittyUrgency(level)
			}
		case "i":
			// Notification id, not used downstream.
		case "body":
			bodyField = value
		default:
			// Unrecognized keys are ignored; the format grows over time.
		}
	}

	var title *string
	var body string
	if payloadType == "title" {
		if strings.TrimSpace(bare) != "" {
			title = &bare
		}
		body = bodyField
	} else {
		body = bare
	}

	if title == nil && strings.TrimSpace(body) == "" {
		return nil
	}
	return []Action{notification(title, body, urgency)}
}

// kittyUrgency remaps kitty's 0-5 urgency scale onto the three-level scale.
func kittyUrgency(level int) Urgency {
	switch {
	case level <= 1:
		return UrgencyLow
	case level == 2:
		return UrgencyNormal
	default:
		return UrgencyCritical
	}
}

// parseRxvtNotify handles OSC 777, the urxvt subcommand convention
// "notify;title;body". Only the notify subcommand is understood. A blank body
// falls back to the title.
func parseRxvtNotify(payload string) []Action {
	fields := strings.SplitN(payload, ";", 3)
	if fields[0] != "notify" {
		return nil
	}

	var titleText, body string
	if len(fields) > 1 {
		titleText = fields[1]
	}
	if len(fields) > 2 {
		body = fields[2]
	}
	if strings.TrimSpace(body) == "" {
		body = titleText
	}

	var title *string
	if strings.TrimSpace(titleText) != "" {
		title = &titleText
	}
	if title == nil && strings.TrimSpace(body) == "" {
		return nil
	}
	return []Action{notification(title, body, UrgencyNormal)}
}

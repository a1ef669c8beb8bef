package models

import (
	"fmt"
	"strings"
)

type NotificationEvent string

type NotificationTpl struct {
	Title string
	Msg   string
}

const (
	EventProfileVerified NotificationEvent = "profile.verified"
	EventProfileHold     NotificationEvent = "profile.hold"
	EventProfileRejected NotificationEvent = "profile.rejected"

	EventApplicationApproved  NotificationEvent = "application.approved"
	EventApplicationHold      NotificationEvent = "application.hold"
	EventApplicationRejected  NotificationEvent = "application.rejected"
	EventApplicationForwarded NotificationEvent = "application.forwarded"
	EventApplicationReopened  NotificationEvent = "application.reopened"

	EventJobPostingApproved NotificationEvent = "job_posting.approved"
	EventJobPostingRejected NotificationEvent = "job_posting.rejected"
	EventJobPostingClosed   NotificationEvent = "job_posting.closed"
)

// templates take payload keys in {{key}} form
var NotificationTplMap = map[NotificationEvent]NotificationTpl{
	EventProfileVerified: {Title: "Profile verified", Msg: "Your placement profile was verified by the department."},
	EventProfileHold:     {Title: "Profile on hold", Msg: "Your placement profile needs changes: {{issues}}"},
	EventProfileRejected: {Title: "Profile rejected", Msg: "Your placement profile was rejected: {{reason}}. You may appeal to the TPO administrator."},

	EventApplicationApproved:  {Title: "Application approved by department", Msg: "Your application for «{{job_title}}» was approved by the department and sent to the TPO."},
	EventApplicationHold:      {Title: "Application on hold", Msg: "Your application for «{{job_title}}» is on hold: {{issues}}"},
	EventApplicationRejected:  {Title: "Application rejected", Msg: "Your application for «{{job_title}}» was rejected: {{reason}}"},
	EventApplicationForwarded: {Title: "Application forwarded", Msg: "Your application for «{{job_title}}» was forwarded to the recruiter."},
	EventApplicationReopened:  {Title: "Application re-opened", Msg: "Your application for «{{job_title}}» was re-opened by the TPO administrator."},

	EventJobPostingApproved: {Title: "Job posting approved", Msg: "Job posting «{{job_title}}» is now active."},
	EventJobPostingRejected: {Title: "Job posting rejected", Msg: "Job posting «{{job_title}}» was rejected: {{reason}}"},
	EventJobPostingClosed:   {Title: "Job posting closed", Msg: "Job posting «{{job_title}}» was closed."},
}

type NotificationData struct {
	Event NotificationEvent
	Title string
	Msg   string
}

func GetNotificationData(event NotificationEvent, payload map[string]string) NotificationData {
	tpl, ok := NotificationTplMap[event]
	if !ok {
		return NotificationData{
			Event: event,
			Title: string(event),
			Msg:   fmt.Sprintf("%v", payload),
		}
	}
	msg := tpl.Msg
	for key, value := range payload {
		msg = strings.ReplaceAll(msg, "{{"+key+"}}", value)
	}
	return NotificationData{
		Event: event,
		Title: tpl.Title,
		Msg:   msg,
	}
}

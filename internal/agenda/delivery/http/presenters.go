package http

import "agenda-notifier/internal/agenda"

type sendResp struct {
	MessageSID string `json:"message_sid"`
	Status     string `json:"status"`
	TaskCount  int    `json:"task_count"`
	Body       string `json:"body"`
}

func newSendResp(o agenda.SendOutput) sendResp {
	return sendResp{
		MessageSID: o.MessageSID,
		Status:     o.Status,
		TaskCount:  o.TaskCount,
		Body:       o.Body,
	}
}

package http

import (
	"report-srv/internal/polish"
)

type polishReq struct {
	Text string `json:"text" binding:"required"`
	Tone string `json:"tone,omitempty"`
}

func (r polishReq) toInput() polish.PolishInput {
	return polish.PolishInput{
		Text: r.Text,
		Tone: r.Tone,
	}
}

type polishResp struct {
	PolishedText string `json:"polished_text"`
	FromCache    bool   `json:"from_cache"`
}

func (h *handler) newPolishResp(o polish.PolishOutput) polishResp {
	return polishResp{
		PolishedText: o.PolishedText,
		FromCache:    o.FromCache,
	}
}

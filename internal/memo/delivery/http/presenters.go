package http

import (
	"errors"
	"strings"

	"voice-memos/internal/memo"
)

var errBlankName = errors.New("names must not contain blank entries")

// --- Request DTOs ---

type namesReq struct {
	Names []string `json:"names" binding:"required"`
}

func (r namesReq) validate() error {
	for _, n := range r.Names {
		if strings.TrimSpace(n) == "" {
			return errBlankName
		}
	}
	return nil
}

// ---

type setContentReq struct {
	Name    string `json:"name"    binding:"required"`
	Content string `json:"content"`
}

func (r setContentReq) validate() error { return nil }

func (r setContentReq) toInput() memo.SetContentInput {
	return memo.SetContentInput{
		Name:    r.Name,
		Content: r.Content,
	}
}

// ---

type setLabelReq struct {
	Name  string `json:"name"  binding:"required"`
	Label string `json:"label" binding:"required"`
}

func (r setLabelReq) validate() error { return nil }

func (r setLabelReq) toInput() memo.SetLabelInput {
	return memo.SetLabelInput{
		Name:  r.Name,
		Label: r.Label,
	}
}

// --- Response DTOs ---

type memoResp struct {
	Name    string  `json:"name"`
	Content string  `json:"content"`
	Label   *string `json:"label"`
}

func newMemoResp(m memo.Memo) memoResp {
	return memoResp{
		Name:    m.Name,
		Content: m.Content,
		Label:   m.Label,
	}
}

type loadResp struct {
	Memos []memoResp `json:"memos"`
}

func (h *handler) newLoadResp(out memo.LoadOutput) loadResp {
	memos := make([]memoResp, len(out.Memos))
	for i, m := range out.Memos {
		memos[i] = newMemoResp(m)
	}
	return loadResp{Memos: memos}
}

type mergeResp struct {
	Merged bool      `json:"merged"`
	Memo   *memoResp `json:"memo,omitempty"`
}

func (h *handler) newMergeResp(out memo.MergeOutput) mergeResp {
	if out.Memo.Name == "" {
		return mergeResp{}
	}
	m := newMemoResp(out.Memo)
	return mergeResp{Merged: true, Memo: &m}
}

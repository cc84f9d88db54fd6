package http

import (
	"fridge-inventory/internal/voice"
)

// --- Request DTOs ---

type commandReq struct {
	Text string `json:"text" binding:"required"`
}

func (r commandReq) toInput(defaultShelfID string) voice.CommandInput {
	return voice.CommandInput{
		Text:           r.Text,
		DefaultShelfID: defaultShelfID,
	}
}

// ---

type queryReq struct {
	Query        string   `json:"query"         binding:"required"`
	ContainerIDs []string `json:"container_ids"`
}

func (r queryReq) toInput() voice.QueryInput {
	return voice.QueryInput{
		Term:         r.Query,
		ContainerIDs: r.ContainerIDs,
	}
}

// --- Response DTOs ---

type actionResp struct {
	Type           string `json:"type"`
	Status         string `json:"status"`
	ItemName       string `json:"item_name"`
	Quantity       int    `json:"quantity"`
	ResultQuantity int    `json:"result_quantity"`
	ShelfName      string `json:"shelf_name"`
	ContainerName  string `json:"container_name"`
	Reason         string `json:"reason,omitempty"`
}

type commandResp struct {
	Success               bool         `json:"success"`
	Actions               []actionResp `json:"actions"`
	Message               string       `json:"message"`
	NeedsClarification    bool         `json:"needs_clarification"`
	ClarificationQuestion string       `json:"clarification_question,omitempty"`
}

func (h *handler) newCommandResp(out voice.CommandOutput) commandResp {
	actions := make([]actionResp, len(out.Actions))
	for i, a := range out.Actions {
		actions[i] = actionResp{
			Type:           string(a.Type),
			Status:         string(a.Status),
			ItemName:       a.ItemName,
			Quantity:       a.Quantity,
			ResultQuantity: a.ResultQuantity,
			ShelfName:      a.ShelfName,
			ContainerName:  a.ContainerName,
			Reason:         string(a.Reason),
		}
	}
	return commandResp{
		Success:               out.Success,
		Actions:               actions,
		Message:               out.Message,
		NeedsClarification:    out.NeedsClarification,
		ClarificationQuestion: out.ClarificationQuestion,
	}
}

type locationResp struct {
	ShelfName     string `json:"shelf_name"`
	ShelfPosition int    `json:"shelf_position"`
	ContainerName string `json:"container_name"`
}

type aggregatedItemResp struct {
	Name          string         `json:"name"`
	TotalQuantity int            `json:"total_quantity"`
	Locations     []locationResp `json:"locations"`
}

type queryResp struct {
	Found   bool                 `json:"found"`
	Items   []aggregatedItemResp `json:"items"`
	Message string               `json:"message"`
}

func (h *handler) newQueryResp(out voice.QueryOutput) queryResp {
	items := make([]aggregatedItemResp, len(out.Items))
	for i, it := range out.Items {
		locs := make([]locationResp, len(it.Locations))
		for j, loc := range it.Locations {
			locs[j] = locationResp{
				ShelfName:     loc.ShelfName,
				ShelfPosition: loc.ShelfPosition,
				ContainerName: loc.ContainerName,
			}
		}
		items[i] = aggregatedItemResp{
			Name:          it.Name,
			TotalQuantity: it.TotalQuantity,
			Locations:     locs,
		}
	}
	return queryResp{
		Found:   out.Found,
		Items:   items,
		Message: out.Message,
	}
}

type transcribeResp struct {
	Text string `json:"text"`
}

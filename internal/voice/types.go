package voice

// ActionType is the kind of a proposed action.
type ActionType string

const (
	ActionAddItem        ActionType = "add_item"
	ActionRemoveItem     ActionType = "remove_item"
	ActionUpdateItem     ActionType = "update_item"
	ActionInfo           ActionType = "info"
	ActionClarifyMessage ActionType = "clarify_message"
)

// IsMutation reports whether the action changes the inventory.
func (t ActionType) IsMutation() bool {
	return t == ActionAddItem || t == ActionRemoveItem || t == ActionUpdateItem
}

// IsKnown reports whether t is one of the supported types.
func (t ActionType) IsKnown() bool {
	return t.IsMutation() || t == ActionInfo || t == ActionClarifyMessage
}

// OutcomeStatus is the result of executing one action.
type OutcomeStatus string

const (
	StatusSuccess OutcomeStatus = "success"
	StatusFailed  OutcomeStatus = "failed"
)

// FailureReason explains a failed outcome.
type FailureReason string

const (
	ReasonShelfRequired   FailureReason = "shelf_required"
	ReasonShelfNotFound   FailureReason = "shelf_not_found"
	ReasonItemNotFound    FailureReason = "item_not_found"
	ReasonInvalidQuantity FailureReason = "invalid_quantity"
	ReasonInvalidItemName FailureReason = "invalid_item_name"
	ReasonUnknownAction   FailureReason = "unknown_action"
	ReasonRepositoryError FailureReason = "repository_error"
)

// ParsedAction is one action proposed by the interpreter. ShelfID is a
// virtual id from the same snapshot; 0 means the command named no shelf.
type ParsedAction struct {
	Type     ActionType
	ItemName string
	Quantity int
	ShelfID  int
}

// InterpretInput is what the interpreter receives for one command.
// DefaultShelfID is a virtual id, 0 when the user has no default shelf.
type InterpretInput struct {
	Text           string
	Context        string
	DefaultShelfID int
}

// ParseResult is the structured answer of the interpreter.
type ParseResult struct {
	Actions               []ParsedAction
	Message               string
	NeedsClarification    bool
	ClarificationQuestion string
}

// ActionOutcome is the execution result of one ParsedAction. Display fields
// fall back to placeholders when the action failed before resolution.
type ActionOutcome struct {
	Type           ActionType    `json:"type"`
	Status         OutcomeStatus `json:"status"`
	ItemName       string        `json:"item_name"`
	Quantity       int           `json:"quantity"`
	ResultQuantity int           `json:"result_quantity"`
	ShelfName      string        `json:"shelf_name"`
	ContainerName  string        `json:"container_name"`
	Reason         FailureReason `json:"reason,omitempty"`
}

// Succeeded reports whether the outcome status is success.
func (o ActionOutcome) Succeeded() bool {
	return o.Status == StatusSuccess
}

// CommandInput is a natural-language command. DefaultShelfID is the durable id
// of the user's default shelf, empty when none is configured.
type CommandInput struct {
	Text           string
	DefaultShelfID string
}

// CommandOutput is the single answer to one command.
type CommandOutput struct {
	Success               bool            `json:"success"`
	Actions               []ActionOutcome `json:"actions"`
	Message               string          `json:"message"`
	NeedsClarification    bool            `json:"needs_clarification"`
	ClarificationQuestion string          `json:"clarification_question,omitempty"`
}

// QueryInput is a read-only lookup. Empty ContainerIDs searches everywhere.
type QueryInput struct {
	Term         string
	ContainerIDs []string
}

// ItemLocation is one distinct place an aggregated item is stored.
type ItemLocation struct {
	ShelfName     string `json:"shelf_name"`
	ContainerName string `json:"container_name"`
	ShelfPosition int    `json:"shelf_position"`
}

// AggregatedItem merges every row sharing a case-insensitive name.
type AggregatedItem struct {
	Name          string         `json:"name"`
	TotalQuantity int            `json:"total_quantity"`
	Locations     []ItemLocation `json:"locations"`
}

// QueryOutput is the answer to one query.
type QueryOutput struct {
	Found   bool             `json:"found"`
	Items   []AggregatedItem `json:"items"`
	Message string           `json:"message"`
}

// TranscribeInput is recorded speech to convert to text.
type TranscribeInput struct {
	Audio    []byte
	MIMEType string
}

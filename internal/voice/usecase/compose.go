package usecase

import (
	"fmt"
	"strings"

	"fridge-inventory/internal/voice"
)

// compose narrates the successful outcomes in order. Overall success requires
// every outcome to succeed. The interpreter message stands in for info and
// clarify_message outcomes and is used at most once.
func (uc *implUseCase) compose(outcomes []voice.ActionOutcome, interpreterMessage string) (bool, string) {
	if len(outcomes) == 0 {
		return true, uc.msg.genericSuccess
	}

	success := true
	anySucceeded := false
	infoUsed := false
	sentences := make([]string, 0, len(outcomes))

	for _, o := range outcomes {
		if !o.Succeeded() {
			success = false
			continue
		}
		anySucceeded = true

		switch o.Type {
		case voice.ActionAddItem:
			sentences = append(sentences, fmt.Sprintf(uc.msg.added, o.Quantity, o.ItemName, o.ShelfName, o.ContainerName))
		case voice.ActionRemoveItem:
			sentences = append(sentences, fmt.Sprintf(uc.msg.removed, o.Quantity, o.ItemName, o.ShelfName, o.ContainerName))
		case voice.ActionUpdateItem:
			sentences = append(sentences, fmt.Sprintf(uc.msg.updated, o.ItemName, o.ShelfName, o.ContainerName, o.Quantity))
		case voice.ActionInfo, voice.ActionClarifyMessage:
			msg := strings.TrimSpace(interpreterMessage)
			if !infoUsed && msg != "" {
				sentences = append(sentences, msg)
				infoUsed = true
			}
		}
	}

	if !anySucceeded {
		return false, uc.msg.genericFailure
	}
	if len(sentences) == 0 {
		return success, uc.msg.genericSuccess
	}
	return success, strings.Join(sentences, uc.msg.separator)
}

package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/studydrop/studydrop-be/types"
)

// validate checks field-level constraints declared on the payload structs.
var validate = validator.New()

const maxMindMapDepth = 3

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", types.ErrMalformedModelOutput, fmt.Sprintf(format, args...))
}

// validateQuiz enforces the quiz contract after parsing: sequential ids
// starting at 1, four uniquely-labeled options per question, and a
// correct_label that names one of those options.
func validateQuiz(payload *types.QuizPayload) error {
	if err := validate.Struct(payload); err != nil {
		return malformed("quiz schema: %v", err)
	}
	for i, q := range payload.Questions {
		if q.ID != i+1 {
			return malformed("question ids must be sequential from 1, got %d at position %d", q.ID, i)
		}
		labels := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if labels[opt.Label] {
				return malformed("question %d has duplicate option label %q", q.ID, opt.Label)
			}
			labels[opt.Label] = true
		}
		if !labels[q.CorrectLabel] {
			return malformed("question %d correct_label %q is not an option label", q.ID, q.CorrectLabel)
		}
	}
	return nil
}

// validateFlashcards enforces sequential ids starting at 1.
func validateFlashcards(payload *types.FlashcardsPayload) error {
	if err := validate.Struct(payload); err != nil {
		return malformed("flashcards schema: %v", err)
	}
	for i, card := range payload.Flashcards {
		if card.ID != i+1 {
			return malformed("flashcard ids must be sequential from 1, got %d at position %d", card.ID, i)
		}
	}
	return nil
}

// validateMindMap enforces the structural invariants the prompt only asks
// the model for: unique node ids, exactly one root, resolvable parents, no
// cycles, and depth at most maxMindMapDepth from the root.
func validateMindMap(payload *types.MindMapPayload) error {
	if err := validate.Struct(payload); err != nil {
		return malformed("mindmap schema: %v", err)
	}

	byID := make(map[string]types.MindMapNode, len(payload.Nodes))
	roots := 0
	for _, node := range payload.Nodes {
		if _, dup := byID[node.ID]; dup {
			return malformed("duplicate mindmap node id %q", node.ID)
		}
		byID[node.ID] = node
		if node.ParentID == nil {
			roots++
		}
	}
	if roots != 1 {
		return malformed("mindmap must have exactly one root node, got %d", roots)
	}

	for _, node := range payload.Nodes {
		if node.ParentID == nil {
			continue
		}
		if _, ok := byID[*node.ParentID]; !ok {
			return malformed("mindmap node %q references missing parent %q", node.ID, *node.ParentID)
		}
	}

	// Walk each node to the root; the hop count is its depth, and visiting
	// more nodes than exist means a parent cycle.
	for _, node := range payload.Nodes {
		depth := 0
		current := node
		for current.ParentID != nil {
			depth++
			if depth > len(byID) {
				return malformed("mindmap contains a parent cycle at node %q", node.ID)
			}
			current = byID[*current.ParentID]
		}
		if depth > maxMindMapDepth {
			return malformed("mindmap node %q exceeds maximum depth %d", node.ID, maxMindMapDepth)
		}
	}
	return nil
}

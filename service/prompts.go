package service

import "fmt"

// System prompts pin the output contract for each generation task. The
// structured tasks get an exact JSON template; summary and tutor get a
// prose directive.

const quizSystemPrompt = `You are an expert educator who creates high-quality multiple choice quiz questions.
You MUST respond with ONLY valid JSON — no explanation, no markdown, no preamble.
The JSON must match this exact structure:
{
  "questions": [
    {
      "id": 1,
      "question": "...",
      "options": [
        {"label": "A", "text": "..."},
        {"label": "B", "text": "..."},
        {"label": "C", "text": "..."},
        {"label": "D", "text": "..."}
      ],
      "correct_label": "A",
      "explanation": "Brief explanation of why this answer is correct."
    }
  ]
}`

const flashcardSystemPrompt = `You are an expert at creating concise, effective study flashcards using the Anki method.
Front: a clear question or term. Back: a precise, memorable answer.
You MUST respond with ONLY valid JSON — no explanation, no markdown, no preamble.
The JSON must match this exact structure:
{
  "flashcards": [
    {"id": 1, "front": "...", "back": "..."}
  ]
}`

const mindmapSystemPrompt = `You are an expert at organizing knowledge into clear hierarchical mind maps.
You MUST respond with ONLY valid JSON — no explanation, no markdown, no preamble.
Rules:
- Exactly ONE node must have parent_id = null (this is the root/central topic)
- All other nodes must reference a valid parent node's id
- Keep labels short (2-5 words max)
- Maximum 3 levels of depth
The JSON must match this exact structure:
{
  "nodes": [
    {"id": "node-1", "label": "Central Topic", "parent_id": null},
    {"id": "node-2", "label": "Main Branch", "parent_id": "node-1"},
    {"id": "node-3", "label": "Sub Topic", "parent_id": "node-2"}
  ]
}`

const summarySystemPrompt = `You are an expert at summarizing complex documents clearly and concisely.
Write in plain prose — no bullet points. Aim for 3-5 paragraphs.`

// BuildQuizPrompt returns the system and task prompts for quiz generation.
func BuildQuizPrompt(text string, numQuestions int) (system, task string) {
	task = fmt.Sprintf(`Based on the following document, generate exactly %d multiple choice questions.
Questions should test genuine understanding, not just memorization.
Vary difficulty from easy to challenging.

DOCUMENT:
%s`, numQuestions, text)
	return quizSystemPrompt, task
}

// BuildFlashcardPrompt returns the system and task prompts for flashcard
// generation.
func BuildFlashcardPrompt(text string, numCards int) (system, task string) {
	task = fmt.Sprintf(`Based on the following document, generate exactly %d flashcards.
Focus on key concepts, definitions, important facts, and relationships between ideas.

DOCUMENT:
%s`, numCards, text)
	return flashcardSystemPrompt, task
}

// BuildMindmapPrompt returns the system and task prompts for mind map
// generation. Node count and depth bounds are requested of the model here
// and enforced by validation after parsing.
func BuildMindmapPrompt(text string) (system, task string) {
	task = fmt.Sprintf(`Based on the following document, create a mind map with 12-20 nodes.
Identify the central topic, main branches (key themes), and sub-topics.

DOCUMENT:
%s`, text)
	return mindmapSystemPrompt, task
}

// BuildSummaryPrompt returns the system and task prompts for summary
// generation.
func BuildSummaryPrompt(text string) (system, task string) {
	task = fmt.Sprintf(`Write a clear, comprehensive summary of the following document.
Capture the main ideas, key arguments, and important conclusions.
Write for a student who hasn't read the original.

DOCUMENT:
%s`, text)
	return summarySystemPrompt, task
}

// BuildTutorSystemPrompt embeds the full document so the tutor answers only
// from its content and says so when it cannot.
func BuildTutorSystemPrompt(text string) string {
	return fmt.Sprintf(`You are an expert tutor helping a student understand the following document.
Answer questions clearly and helpfully, always grounded in the document content.
If the answer isn't in the document, say so honestly rather than guessing.
When relevant, mention which section or concept your answer relates to.

DOCUMENT CONTENT:
%s`, text)
}

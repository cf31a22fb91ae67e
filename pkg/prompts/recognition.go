package prompts

import (
	"fmt"
	"strings"
)

// RecognitionSystemMessage frames the vision model as a cultural guide.
const RecognitionSystemMessage = `You are a cultural guide helping language learners. ` +
	`You identify culturally significant objects in photos and explain them briefly. ` +
	`You always answer with a single JSON object and nothing else.`

// BuildRecognitionPrompt creates the prompt sent alongside the photo.
// The reply contract: a JSON object with matched, english, translation,
// pronunciation and cultural_context fields; matched=false when no culturally
// significant object is visible.
func BuildRecognitionPrompt(targetLanguage string) string {
	var prompt strings.Builder

	prompt.WriteString("Look at this photo and identify the most culturally significant object in it.\n\n")
	prompt.WriteString("Respond with a JSON object in exactly this shape:\n")
	prompt.WriteString("{\n")
	prompt.WriteString(`  "matched": true,` + "\n")
	prompt.WriteString(`  "english": "<common english name of the object>",` + "\n")
	prompt.WriteString(fmt.Sprintf(`  "translation": "<name in %s>",`+"\n", targetLanguage))
	prompt.WriteString(`  "pronunciation": "<romanized pronunciation of the translation>",` + "\n")
	prompt.WriteString(`  "cultural_context": "<two or three sentences on the object's cultural significance>"` + "\n")
	prompt.WriteString("}\n\n")
	prompt.WriteString(`If there is no culturally significant object in the photo, respond with {"matched": false}.` + "\n")
	prompt.WriteString("Do not wrap the JSON in markdown fences or add any text around it.\n")

	return prompt.String()
}

// ChatSystemMessage frames the conversational model as a tutor aware of the
// learner's vocabulary.
const ChatSystemMessage = `You are a friendly language and culture tutor. ` +
	`Answer questions about the learner's scanned vocabulary, suggest usage examples, ` +
	`and keep replies short and conversational.`

// BuildChatPrompt combines the learner's message with their recent vocabulary
// so the tutor can reference words they have actually encountered.
func BuildChatPrompt(message string, recentWords []string) string {
	var prompt strings.Builder

	if len(recentWords) > 0 {
		prompt.WriteString("Words this learner has recently scanned:\n")
		for _, word := range recentWords {
			prompt.WriteString(fmt.Sprintf("- %s\n", word))
		}
		prompt.WriteString("\n")
	}
	prompt.WriteString("Learner's message:\n")
	prompt.WriteString(message)

	return prompt.String()
}

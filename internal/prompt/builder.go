package prompt

import (
	"fmt"
	"strings"

	"projector/internal/interview"
	"projector/internal/llm"
)

const defaultSystemPrompt = "You are an intelligent project definition wizard that helps users define LLM-based applications. " +
	"Generate thoughtful, context-aware questions to understand the user's project requirements. " +
	"Your questions should build upon previous answers and help create a comprehensive project definition."

const productManagerSystemPrompt = "You are a Product Manager helping to define an LLM-based application. " +
	"Ask questions focused on user needs, market fit, success metrics, and product roadmap. " +
	"Your goal is to ensure the project has clear objectives and delivers value to users."

const architectSystemPrompt = "You are an LLM Architect helping to define an LLM-based application. " +
	"Ask technical questions about model selection, prompt engineering, data requirements, and system architecture. " +
	"Your goal is to ensure the project is technically feasible and optimally designed."

const uxDesignerSystemPrompt = "You are a UX Designer helping to define an LLM-based application. " +
	"Ask questions about user experience, interface design, user flows, and accessibility. " +
	"Your goal is to ensure the project delivers an excellent user experience."

const complianceOfficerSystemPrompt = "You are a Compliance Officer helping to define an LLM-based application. " +
	"Ask questions about data privacy, ethical considerations, regulatory requirements, and risk mitigation. " +
	"Your goal is to ensure the project complies with relevant regulations and ethical standards."

const documentSystemPrompt = "You are an intelligent project definition wizard that helps users define LLM-based applications. " +
	"Based on the user's answers to your questions, generate a comprehensive project definition document in Markdown format."

const questionFormatInstructions = `Return your response as a JSON object with the following structure:
{
  "question_type": "MultipleChoice" | "YesNo" | "RatingScale" | "FreeText",
  "question_text": "The text of the question",
  "options": ["Option 1", "Option 2", ...] (only for MultipleChoice),
  "scale": [min, max] (only for RatingScale),
  "help_text": "Optional help text for the question"
}
Make sure the question is relevant to the context and builds upon previous answers.`

const documentSectionInstructions = `Include the following sections in the project definition:
1. Project Name and Short Summary
2. Use Cases and Goals (with examples or scenarios)
3. Target User Profile(s)
4. Required Inputs and Expected Outputs
5. Functional Components/Modules
6. Prompt Engineering Strategy
7. Dataset Needs and Sources
8. Evaluation Metrics and Success Criteria
9. Scalability and Deployment Recommendations
10. Ethical and Bias Considerations

For each section, include a confidence score (1-5) based on the specificity and completeness of the user's answers.`

// Builder constructs the message sequences sent to the generation client.
type Builder struct{}

// QuestionMessages builds the request for the next interview question. The
// persona picks the system prompt; the transcript carries everything the
// user has said so far.
func (b *Builder) QuestionMessages(persona interview.Persona, transcript string) []llm.Message {
	var sb strings.Builder
	sb.WriteString("Based on the following context, generate the next question to ask the user about their LLM-based project. ")
	sb.WriteString("The question should help gather more information to create a comprehensive project definition.\n\n")
	fmt.Fprintf(&sb, "CONTEXT:\n%s\n\n", transcript)
	sb.WriteString(questionFormatInstructions)

	return []llm.Message{
		llm.SystemMessage(systemPromptFor(persona)),
		llm.UserMessage(sb.String()),
	}
}

// DocumentMessages builds the request for the final project definition.
// The system prompt is fixed: the document voice does not change with the
// interview persona.
func (b *Builder) DocumentMessages(transcript string) []llm.Message {
	var sb strings.Builder
	sb.WriteString("Based on the following context, generate a comprehensive project definition document for an LLM-based application. ")
	sb.WriteString("The document should include all the sections mentioned below and be formatted in Markdown.\n\n")
	fmt.Fprintf(&sb, "CONTEXT:\n%s\n\n", transcript)
	sb.WriteString(documentSectionInstructions)

	return []llm.Message{
		llm.SystemMessage(documentSystemPrompt),
		llm.UserMessage(sb.String()),
	}
}

func systemPromptFor(persona interview.Persona) string {
	switch persona {
	case interview.PersonaProductManager:
		return productManagerSystemPrompt
	case interview.PersonaArchitect:
		return architectSystemPrompt
	case interview.PersonaUxDesigner:
		return uxDesignerSystemPrompt
	case interview.PersonaComplianceOfficer:
		return complianceOfficerSystemPrompt
	default:
		return defaultSystemPrompt
	}
}

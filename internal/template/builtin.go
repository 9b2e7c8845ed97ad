package template

import "projector/internal/question"

// builtinTemplates returns the presets shipped with the wizard. They cover
// the most common shapes of LLM-based applications.
func builtinTemplates() []Template {
	chat := New(
		"chat-assistant",
		"Conversational assistant that answers user questions in natural language",
		"Conversational AI",
		"The project is a conversational assistant. It holds multi-turn conversations, "+
			"answers questions in natural language, and may need guardrails for tone and topic.",
	)
	chat.AddQuestion(question.NewMultipleChoice("q_chat_1", "Where will the assistant be deployed?",
		[]string{"Website widget", "Mobile app", "Messaging platform", "Internal tool"}))
	chat.AddQuestion(question.NewYesNo("q_chat_2", "Should the assistant remember past conversations per user?"))
	chat.AddMetadata("template", "chat-assistant")

	rag := New(
		"knowledge-base",
		"Assistant that answers from a private document collection with citations",
		"Knowledge Management",
		"The project answers questions from a private knowledge base. Retrieval quality, "+
			"citation of sources, and freshness of the indexed documents are central concerns.",
	)
	rag.AddQuestion(question.NewFreeText("q_kb_1", "What kinds of documents make up the knowledge base?"))
	rag.AddQuestion(question.NewRatingScale("q_kb_2", "How important are verbatim citations in answers?", 1, 5))
	rag.AddMetadata("template", "knowledge-base")

	content := New(
		"content-generator",
		"Tool that drafts marketing or editorial content from briefs",
		"Content Creation",
		"The project generates written content from briefs or outlines. Brand voice, "+
			"revision workflows, and factual accuracy requirements drive the design.",
	)
	content.AddQuestion(question.NewMultipleChoice("q_cg_1", "What content formats matter most?",
		[]string{"Blog posts", "Social media", "Product copy", "Email campaigns"}))
	content.AddMetadata("template", "content-generator")

	code := New(
		"code-assistant",
		"Developer-facing assistant for code generation and review",
		"Developer Tools",
		"The project assists developers with code: generating snippets, explaining code, "+
			"or reviewing changes. Language coverage and editor integration shape the scope.",
	)
	code.AddQuestion(question.NewYesNo("q_ca_1", "Will the assistant run inside an existing IDE or editor?"))
	code.AddMetadata("template", "code-assistant")

	return []Template{chat, rag, content, code}
}

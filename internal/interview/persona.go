package interview

import "strings"

// Persona selects the questioning style of the wizard. It shapes which
// angle follow-up questions take; it does not change the final document.
type Persona string

const (
	PersonaDefault           Persona = "Default"
	PersonaProductManager    Persona = "ProductManager"
	PersonaArchitect         Persona = "Architect"
	PersonaUxDesigner        Persona = "UxDesigner"
	PersonaComplianceOfficer Persona = "ComplianceOfficer"
)

// ParsePersona maps a user-supplied name to a Persona. Matching is
// case-insensitive and accepts common aliases; anything unrecognized
// falls back to the default persona.
func ParsePersona(name string) Persona {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pm", "product", "product_manager":
		return PersonaProductManager
	case "architect", "llm_architect":
		return PersonaArchitect
	case "ux", "designer", "ux_designer":
		return PersonaUxDesigner
	case "compliance", "compliance_officer":
		return PersonaComplianceOfficer
	default:
		return PersonaDefault
	}
}

func (p Persona) String() string {
	switch p {
	case PersonaProductManager:
		return "Product Manager"
	case PersonaArchitect:
		return "LLM Architect"
	case PersonaUxDesigner:
		return "UX Designer"
	case PersonaComplianceOfficer:
		return "Compliance Officer"
	default:
		return "Default"
	}
}

package events

func SubjectLeadCaptured(leadID string) string { return "diagnostico.lead." + leadID + ".captured" }

// LeadCapturedEvent is published after a lead row is written.
type LeadCapturedEvent struct {
	LeadID    string `json:"lead_id"`
	Email     string `json:"email"`
	NotaGeral int    `json:"nota_geral"`
	Nivel     string `json:"nivel"`
}

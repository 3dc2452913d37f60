package domain

// RankedLabel is a (label, score) pair produced by the zero-shot model.
// Scores are conceptually in [0,1]; the full ranked list is a probability
// distribution over the candidate labels.
type RankedLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ClassificationResult is the outcome of classifying one message.
// Immutable after creation.
type ClassificationResult struct {
	Mensagem       string     `json:"mensagem"`
	Categoria      Category   `json:"categoria"`
	Explicacao     string     `json:"explicacao"`
	SolucaoCliente string     `json:"solucao_cliente"`
	SolucaoTecnica string     `json:"solucao_tecnica"`
	Confianca      Confidence `json:"confianca"`
}

// StoredMessage is a ClassificationResult plus the store-assigned
// identifier. Identifiers are unique and strictly increasing in insertion
// order; rows are never updated or deleted.
type StoredMessage struct {
	ID             int64      `json:"id"`
	Mensagem       string     `json:"mensagem"`
	Categoria      Category   `json:"categoria"`
	Explicacao     string     `json:"explicacao"`
	SolucaoCliente string     `json:"solucao_cliente"`
	SolucaoTecnica string     `json:"solucao_tecnica"`
	Confianca      Confidence `json:"confianca"`
}

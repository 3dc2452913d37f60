// Package classification implements the re-ranking and confidence
// assignment policy applied on top of the zero-shot model output.
package classification

import (
	"context"
	"fmt"

	"triage_server/core/domain"
	"triage_server/core/port/out"
	"triage_server/pkg/logger"
)

const (
	// An operational label beats a top-ranked Saudação when its score is
	// strictly above this. Zero-shot models overweight greeting phrasing
	// ("Olá, estou com problemas...") over the actionable intent.
	priorityThreshold = 0.15

	// Below this the result collapses to Outros regardless of label.
	fallbackThreshold = 0.2

	// Above this the confidence bucket is alta instead of média.
	highConfidenceThreshold = 0.6
)

// Policy turns ranked model output into a final ClassificationResult.
type Policy struct {
	classifier out.ZeroShotClassifier
}

// NewPolicy creates a Policy backed by the given classifier.
func NewPolicy(classifier out.ZeroShotClassifier) *Policy {
	return &Policy{classifier: classifier}
}

// Classify runs the model over the candidate labels and applies the
// greeting-demotion and low-confidence rules, in that order.
//
// Classify never fails: any adapter error or malformed output collapses
// to the Outros/erro fallback result, which callers persist and return
// like any other outcome.
func (p *Policy) Classify(ctx context.Context, text string) *domain.ClassificationResult {
	ranked, err := p.classifier.Rank(ctx, text, domain.CandidateLabels())
	if err != nil {
		logger.WithError(err).Error("Zero-shot classification failed")
		return fallbackResult(text)
	}
	if len(ranked) == 0 {
		logger.Error("Zero-shot classifier returned no labels")
		return fallbackResult(text)
	}

	top := ranked[0]

	// Greeting demotion: the list arrives sorted descending, so the first
	// qualifying operational label is also the best-scoring one.
	if top.Label == string(domain.CategorySaudacao) {
		for _, rl := range ranked {
			if domain.IsOperational(rl.Label) && rl.Score > priorityThreshold {
				top = rl
				break
			}
		}
	}

	var categoria domain.Category
	var confianca domain.Confidence
	if top.Score < fallbackThreshold {
		// A demoted label can still land here; Outros wins over a weak
		// operational score.
		categoria = domain.CategoryOutros
		confianca = domain.ConfidenceBaixa
	} else {
		categoria = domain.CategoryFromLabel(top.Label)
		if top.Score > highConfidenceThreshold {
			confianca = domain.ConfidenceAlta
		} else {
			confianca = domain.ConfidenceMedia
		}
	}

	meta := domain.MetaFor(categoria)
	return &domain.ClassificationResult{
		Mensagem:       text,
		Categoria:      categoria,
		Explicacao:     fmt.Sprintf("Classificação semântica (IA) com score: %.2f", top.Score),
		SolucaoCliente: meta.SolucaoCliente,
		SolucaoTecnica: meta.SolucaoTecnica,
		Confianca:      confianca,
	}
}

func fallbackResult(text string) *domain.ClassificationResult {
	meta := domain.MetaFor(domain.CategoryOutros)
	return &domain.ClassificationResult{
		Mensagem:       text,
		Categoria:      domain.CategoryOutros,
		Explicacao:     "Erro interno na classificação IA.",
		SolucaoCliente: meta.SolucaoCliente,
		SolucaoTecnica: meta.SolucaoTecnica,
		Confianca:      domain.ConfidenceErro,
	}
}

package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"tiendapos/internal/infra"

	"github.com/rs/zerolog/log"
)

// AlertaStockWorker mails the configured address when a product drops to or
// below its reorder threshold.
type AlertaStockWorker struct {
	mailer *infra.Mailer
	to     string
}

func NewAlertaStockWorker(mailer *infra.Mailer, to string) *AlertaStockWorker {
	return &AlertaStockWorker{mailer: mailer, to: to}
}

func (w *AlertaStockWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload AlertaStockPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alerta_worker: invalid payload")
		return
	}
	if w.to == "" {
		log.Warn().
			Str("codigo", payload.Codigo).
			Int("stock", payload.StockActual).
			Msg("alerta_worker: ALERT_EMAIL not configured — alert logged only")
		return
	}

	subject := fmt.Sprintf("Stock bajo: %s (%s)", payload.Nombre, payload.Codigo)
	body := fmt.Sprintf(
		"El producto %s (%s) quedó con %d unidades; el mínimo configurado es %d.\nReponer stock.",
		payload.Nombre, payload.Codigo, payload.StockActual, payload.StockMinimo)

	if err := w.mailer.SendAlerta(w.to, subject, body); err != nil {
		log.Error().Err(err).Str("codigo", payload.Codigo).Msg("alerta_worker: failed to send email")
		return
	}
	log.Info().Str("codigo", payload.Codigo).Int("stock", payload.StockActual).Msg("alerta_worker: low stock alert sent")
}

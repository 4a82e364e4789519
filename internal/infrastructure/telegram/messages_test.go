package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEtaPromptMessage(t *testing.T) {
	msg := etaPromptMessage("Colhedora 08 parada")

	assert.Contains(t, msg, "Qual o prazo para resolução do problema?")
	assert.Contains(t, msg, "Colhedora 08 parada")
	assert.Contains(t, msg, "formato HH:MM")
}

func TestEtaConfirmationMessage(t *testing.T) {
	t.Run("no remaining alerts", func(t *testing.T) {
		msg := etaConfirmationMessage("16:30", 0)
		assert.Contains(t, msg, "Prazo registrado: 16:30.")
		assert.NotContains(t, msg, "aguardando previsão")
	})

	t.Run("one remaining alert", func(t *testing.T) {
		msg := etaConfirmationMessage("16:30", 1)
		assert.Contains(t, msg, "Ainda há 1 alerta aguardando previsão.")
	})

	t.Run("several remaining alerts", func(t *testing.T) {
		msg := etaConfirmationMessage("16:30", 4)
		assert.Contains(t, msg, "Ainda há 4 alertas aguardando previsão.")
	})
}

package telegram

import "fmt"

// Message texts sent to the leader's chat. All operator-facing text is
// Brazilian Portuguese.

func etaPromptMessage(description string) string {
	return fmt.Sprintf("Qual o prazo para resolução do problema?\n\n%s\n\n(Responda apenas o horário no formato HH:MM)", description)
}

const invalidFormatMessage = "Por favor, informe a previsão apenas no formato HH:MM (ex: 15:30)."

const nothingPendingMessage = "Não há alertas aguardando previsão no momento."

func etaConfirmationMessage(etaText string, remaining int64) string {
	msg := fmt.Sprintf("Prazo registrado: %s. O alerta será monitorado até este horário.", etaText)
	if remaining == 1 {
		msg += "\n\nAinda há 1 alerta aguardando previsão."
	} else if remaining > 1 {
		msg += fmt.Sprintf("\n\nAinda há %d alertas aguardando previsão.", remaining)
	}
	return msg
}

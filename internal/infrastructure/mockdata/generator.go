// Package mockdata produces synthetic maintenance alerts for the automatic
// generator. The catalogs mirror the equipment fleet of the sugarcane units
// the dashboard was built for.
package mockdata

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	alertusecases "vigia/internal/application/alert/usecases"
	"vigia/internal/shared/biztime"
)

var unidades = []string{
	"Unidade Barra Bonita",
	"Unidade Lençóis Paulista",
	"Unidade Macatuba",
	"Unidade Pederneiras",
	"Unidade Bauru",
}

var frentes = []string{
	"Frente de Colheita",
	"Frente de Plantio",
	"Frente de Manutenção",
	"Frente de Transporte",
	"Frente de Armazenamento",
}

type equipamento struct {
	nome   string
	codigo string
}

var equipamentos = []equipamento{
	{"Colheitadeira JD9870", "EQ001"},
	{"Trator Case IH", "EQ002"},
	{"Plantadeira John Deere", "EQ003"},
	{"Caminhão Scania", "EQ004"},
	{"Silo de Armazenamento", "EQ005"},
}

var tiposOperacao = []string{
	"Manutenção Preventiva",
	"Manutenção Corretiva",
	"Operação de Colheita",
	"Operação de Plantio",
	"Inspeção de Equipamento",
}

var operacoes = []string{
	"Troca de Filtro de Ar",
	"Troca de Óleo",
	"Ajuste de Sistema Hidráulico",
	"Limpeza de Radiador",
	"Verificação de Freios",
	"Calibração de Sensores",
	"Substituição de Correias",
	"Manutenção de Motor",
	"Verificação de Pneus",
	"Limpeza de Sistema de Combustível",
}

var problemas = []string{
	"Equipamento apresentando baixa eficiência",
	"Vazamento de óleo identificado",
	"Sistema hidráulico com ruído anormal",
	"Temperatura elevada no motor",
	"Falha no sistema de freios",
	"Sensores com leitura incorreta",
	"Correias desgastadas",
	"Consumo excessivo de combustível",
	"Pneus com desgaste irregular",
	"Sistema de arrefecimento com problemas",
}

// Generator builds randomized alert commands from the catalogs above.
type Generator struct {
	mu           sync.Mutex
	rng          *rand.Rand
	operatorName string
}

func NewGenerator(operatorName string) *Generator {
	return &Generator{
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		operatorName: operatorName,
	}
}

func (g *Generator) Generate() alertusecases.CreateAlertCommand {
	g.mu.Lock()
	defer g.mu.Unlock()

	eq := equipamentos[g.rng.Intn(len(equipamentos))]
	operacao := operacoes[g.rng.Intn(len(operacoes))]
	problema := problemas[g.rng.Intn(len(problemas))]

	now := biztime.Now()
	// The operation that triggered the alert started some time in the last
	// 24 hours.
	opened := now.Add(-time.Duration(g.rng.Intn(24))*time.Hour - time.Duration(g.rng.Intn(60))*time.Minute)
	openFor := now.Sub(opened)

	return alertusecases.CreateAlertCommand{
		Description:   fmt.Sprintf("[AUTO] %s - %s - %s", eq.nome, operacao, problema),
		Code:          fmt.Sprintf("%d", 10000+g.rng.Intn(90000)),
		Unit:          unidades[g.rng.Intn(len(unidades))],
		Front:         frentes[g.rng.Intn(len(frentes))],
		Equipment:     eq.nome,
		EquipmentCode: eq.codigo,
		OperationType: tiposOperacao[g.rng.Intn(len(tiposOperacao))],
		Operation:     operacao,
		OperatorName:  g.operatorName,
		OperationDate: &opened,
		OpenDuration:  fmt.Sprintf("%dh %dmin", int(openFor.Hours()), int(openFor.Minutes())%60),
		TreeType:      "Árvore de Manutenção",
	}
}

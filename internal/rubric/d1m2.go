package rubric

import "github.com/formativa/rubrica/internal/scoring"

// Dimensão 1, Categoria 2: cronograma e formato dos encontros de formação.
// Items 1 to 4 are frequency scales (single choice), the rest are count
// ladders with a "não há previsão" option that zeroes and collapses the item.
func formD1M2() Form {
	return Form{
		Key:   "d1m2",
		Title: "Dimensão 1 - Categoria 2",
		Items: []Item{
			{
				ID:    "item1",
				Title: "Cronograma das demandas de formação",
				Options: []Option{
					opt("1.1", "Semanais"),
					opt("1.2", "Quinzenais"),
					opt("1.3", "Mensais"),
					opt("1.4", "Semestrais"),
					opt("1.5", "Não há previsão de cronograma das demandas de formação"),
				},
				Behavior: scoring.Behavior{SingleSelect: true},
				Rule:     frequencyScale("1"),
			},
			{
				ID:    "item2",
				Title: "Encontros coletivos presenciais",
				Options: []Option{
					opt("2.1", "Encontros semanais"),
					opt("2.2", "Encontros quinzenais"),
					opt("2.3", "Encontros mensais"),
					opt("2.4", "Encontros semestrais"),
					opt("2.5", "Não há previsão de encontros presenciais"),
				},
				Behavior: scoring.Behavior{SingleSelect: true},
				Rule:     frequencyScale("2"),
			},
			{
				ID:    "item3",
				Title: "Encontros síncronos em plataforma Virtual com mediação de profissional formador",
				Options: []Option{
					opt("3.1", "Encontros semanais"),
					opt("3.2", "Encontros quinzenais"),
					opt("3.3", "Encontros mensais"),
					opt("3.4", "Encontros semestrais"),
					opt("3.5", "Não há previsão de encontros síncronos"),
				},
				Behavior: scoring.Behavior{SingleSelect: true},
				Rule:     frequencyScale("3"),
			},
			{
				ID:    "item4",
				Title: "Cronograma de atividades assíncronas",
				Options: []Option{
					opt("4.1", "Semanal"),
					opt("4.2", "Quinzenal"),
					opt("4.3", "Mensal"),
					opt("4.4", "Semestral"),
					opt("4.5", "Não há previsão de atividades assíncronas"),
				},
				Behavior: scoring.Behavior{SingleSelect: true},
				Rule:     frequencyScale("4"),
			},
			{
				ID:    "item5",
				Title: "As atividades virtuais assíncronas contemplam propostas de estudos",
				Options: []Option{
					opt("5.1", "Individual"),
					opt("5.2", "Em grupo"),
					opt("5.3", "Não há previsão de atividades assíncronas"),
				},
				Behavior: scoring.Behavior{VetoID: "5.3"},
				Rule: first(
					when(has("5.3"), 0),
					when(countEq(1), 0.5),
					when(countEq(2), 1),
				),
			},
			{
				ID:    "item6",
				Title: "A carga horária contempla momentos distintos de formação",
				Options: []Option{
					opt("6.1", "Momentos presenciais coletivos"),
					opt("6.2", "Momentos de estudo individual"),
					opt("6.3", "Pesquisa"),
					opt("6.4", "Interação remota"),
					opt("6.5", "A carga horária não especifica a distribuição"),
				},
				Behavior: scoring.Behavior{VetoID: "6.5"},
				Rule: first(
					when(has("6.5"), 0),
					when(countEq(1), 0.25),
					when(countEq(2), 0.5),
					when(countEq(3), 0.75),
					when(countEq(4), 1),
				),
			},
			{
				ID:    "item7",
				Title: "Carga horária de referência",
				Options: []Option{
					opt("7.1", "Atende a carga horária total mínima prevista"),
					opt("7.2", "Atende a carga horária presencial mínima prevista"),
					opt("7.3", "Atende a equivalência prevista da carga horária híbrida"),
				},
				Rule: first(
					when(countEq(0), 0),
					when(countEq(3), 1),
					when(has("7.3"), 0.75),
					when(has("7.2"), 0.5),
					when(has("7.1"), 0.25),
				),
			},
			{
				ID:    "item8",
				Title: "Encontros coletivos presenciais",
				Options: []Option{
					opt("8.1", "Encontros coletivos presenciais no ambiente escolar"),
					opt("8.2", "Encontros coletivos presenciais em outros espaços que favoreçam a interação entre profissionais de diferentes escolas"),
					opt("8.3", "Não há previsão de encontros coletivos presenciais"),
				},
				Behavior: scoring.Behavior{VetoID: "8.3"},
				Rule:     pairWithVeto("8.3"),
			},
			{
				ID:    "item9",
				Title: "Encontros coletivos virtuais",
				Options: []Option{
					opt("9.1", "Encontros coletivos síncronos entre pares em ambiente virtual"),
					opt("9.2", "Encontros coletivos síncronos que favoreçam a interação entre profissionais de diferentes escolas"),
					opt("9.3", "Não há previsão de encontros coletivos virtuais"),
				},
				Behavior: scoring.Behavior{VetoID: "9.3"},
				Rule:     pairWithVeto("9.3"),
			},
			{
				ID:    "item10",
				Title: "Previsibilidade de acessibilidade nos encontros coletivos",
				Options: []Option{
					opt("10.1", "Os espaços coletivos presenciais atendem os critérios de acessibilidade: arquitetura e de comunicação"),
					opt("10.2", "O ambiente virtual garante o acesso dos profissionais da educação com deficiência às tecnologias"),
					opt("10.3", "Não há previsibilidade de acessibilidade para os encontros coletivos"),
				},
				Behavior: scoring.Behavior{VetoID: "10.3"},
				Rule:     pairWithVeto("10.3"),
			},
		},
	}
}

// frequencyScale scores a weekly/biweekly/monthly/semester scale where the
// fifth option means no schedule at all. Item ids follow the n.1..n.5 pattern.
func frequencyScale(n string) scoring.Rule {
	return first(
		when(has(n+".5"), 0),
		when(has(n+".4"), 0.25),
		when(has(n+".3"), 0.5),
		when(has(n+".2"), 0.75),
		when(has(n+".1"), 1),
	)
}

// pairWithVeto scores a two-option item where picking either one is worth
// 0.75, both 1, and the veto option zeroes the item.
func pairWithVeto(veto string) scoring.Rule {
	return first(
		when(has(veto), 0),
		when(countEq(1), 0.75),
		when(countEq(2), 1),
	)
}

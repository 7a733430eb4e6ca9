package rubric

// Estrutura Formativa 1: organização da oferta e do percurso. Item 1 is scored
// from a numeric percent field rather than its checkboxes; the remaining items
// are count ladders with an occasional priority option.
func formEF1() Form {
	return Form{
		Key:   "ef1",
		Title: "Estrutura Formativa 1",
		Items: []Item{
			{
				ID:    "item1",
				Title: "Organização da oferta",
				Options: []Option{
					opt("1.1", "Alcance da formação"),
					opt("1.2", "Participação de outros profissionais"),
					opt("1.3", "Mapeamento sobre perfil e condições de acesso"),
					opt("1.4", "Período de realização da formação"),
					opt("1.5", "Disponibilidade de materiais para atividades"),
					opt("1.6", "Previsibilidade de materiais para cursistas com deficiências"),
					opt("1.7", "Previsibilidade de estratégias para cursistas sem acesso à internet"),
				},
				PercentOption: "1.1",
				Rule: percent(
					cut(100, 1),
					cut(90, 0.75),
					cut(80, 0.5),
				),
			},
			{
				ID:    "item2",
				Title: "Organização da carga horária e regularidade das atividades formativas",
				Options: []Option{
					opt("2.1", "Carga horária total mínima"),
					opt("2.2", "Atende à carga horária mínima presencial"),
					opt("2.3", "Equivalência entre carga horária on-line e presencial"),
					opt("2.4", "Carga horária distribuída e mensurada"),
					opt("2.5", "Regularidade das atividades formativas"),
					opt("2.6", "Regularidade dos encontros presenciais"),
					opt("2.7", "Regularidade dos encontros síncronos"),
				},
				Rule: first(
					when(has("2.1"), 1),
					when(countAtLeast(5), 0.75),
					when(countAtLeast(3), 0.5),
					when(countAtLeast(1), 0.25),
				),
			},
			{
				ID:    "item3",
				Title: "Organização do trabalho pedagógico",
				Options: []Option{
					opt("3.1", "Diversidade e dinamicidade de estratégias formativas"),
					opt("3.2", "Metodologia possibilita o trabalho coletivo"),
					opt("3.3", "Estratégias propiciam desenvolvimento responsivo das cursistas"),
					opt("3.4", "Flexibilidade para reorganização e replanejamento"),
					opt("3.5", "Estratégias para conter/combater a evasão"),
				},
				Rule: first(
					when(countEq(5), 1),
					when(countAtLeast(3), 0.75),
					when(countAtLeast(2), 0.5),
					when(countEq(1), 0.25),
				),
			},
			{
				ID:    "item4",
				Title: "Organização dos processos avaliativos",
				Options: []Option{
					opt("4.1", "Especificação sobre formas de avaliação e certificação"),
					opt("4.2", "Estratégias avaliativas coadunam com avaliação processual"),
					opt("4.3", "Avaliativos internos consideram feedbacks"),
					opt("4.4", "Registros e sistematização do percurso"),
				},
				Rule: first(
					when(countEq(4), 1),
					when(countEq(3), 0.75),
					when(countEq(2), 0.5),
					when(countEq(1), 0.25),
				),
			},
			{
				ID:    "item5",
				Title: "Organização do roteiro de formação",
				Options: []Option{
					opt("5.1", "Quantidade e qualidade das informações do roteiro"),
					opt("5.2", "Coerência entre planejamento e execução prática"),
					opt("5.3", "Coerência entre objetivos, metodologia, materiais e conteúdo"),
				},
				Rule: first(
					when(countEq(3), 1),
					when(countEq(2), 0.75),
					when(countEq(1), 0.5),
				),
			},
		},
	}
}

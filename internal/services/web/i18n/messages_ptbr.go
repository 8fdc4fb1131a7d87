package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	// Page titles. The argument is the app name.
	message.SetString(lang, "title.landing", "%s | Planejamento de homeschool sem atrapalhar")
	message.SetString(lang, "title.login", "%s | Entrar")
	message.SetString(lang, "title.signup", "%s | Criar Conta")
	message.SetString(lang, "title.daily", "%s | Diário")
	message.SetString(lang, "title.students", "%s | Estudantes")
	message.SetString(lang, "title.student_create", "%s | Adicionar Estudante")
	message.SetString(lang, "title.student_course", "%s | Cronograma do Curso")
	message.SetString(lang, "title.coursework", "%s | Tarefa")
	message.SetString(lang, "title.grade", "%s | Avaliar")
	message.SetString(lang, "title.enroll", "%s | Matricular")
	message.SetString(lang, "title.school_years", "%s | Anos Letivos")
	message.SetString(lang, "title.school_year_create", "%s | Adicionar Ano Letivo")
	message.SetString(lang, "title.school_year", "%s | Ano Letivo")
	message.SetString(lang, "title.grade_level_create", "%s | Adicionar Série")
	message.SetString(lang, "title.school_break_create", "%s | Adicionar Recesso")
	message.SetString(lang, "title.course_create", "%s | Adicionar Curso")
	message.SetString(lang, "title.course", "%s | Curso")
	message.SetString(lang, "title.course_task_create", "%s | Adicionar Tarefa")
	message.SetString(lang, "title.checklist", "%s | Lista Semanal")
	message.SetString(lang, "title.checklist_edit", "%s | Editar Lista Semanal")
	message.SetString(lang, "title.settings", "%s | Configurações")
	message.SetString(lang, "title.error", "%s | Erro")

	// Navigation
	message.SetString(lang, "nav.daily", "Diário")
	message.SetString(lang, "nav.students", "Estudantes")
	message.SetString(lang, "nav.school_years", "Anos Letivos")
	message.SetString(lang, "nav.checklist", "Lista Semanal")
	message.SetString(lang, "nav.settings", "Configurações")
	message.SetString(lang, "nav.sign_in", "Entrar")
	message.SetString(lang, "nav.sign_up", "Cadastrar")
	message.SetString(lang, "nav.sign_out", "Sair")
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")

	// Shared form labels
	message.SetString(lang, "form.name", "Nome")
	message.SetString(lang, "form.description", "Descrição")
	message.SetString(lang, "form.start_date", "Data de início")
	message.SetString(lang, "form.end_date", "Data de término")
	message.SetString(lang, "form.days", "Dias da semana")
	message.SetString(lang, "form.save", "Salvar")
	message.SetString(lang, "form.cancel", "Cancelar")
	message.SetString(lang, "form.error.name_required", "O nome é obrigatório.")
	message.SetString(lang, "form.error.description_required", "A descrição é obrigatória.")
	message.SetString(lang, "form.error.start_required", "A data de início é obrigatória.")
	message.SetString(lang, "form.error.end_required", "A data de término é obrigatória.")
	message.SetString(lang, "form.error.date_format", "Informe uma data válida.")
	message.SetString(lang, "form.error.date_order", "A data de início deve ser anterior à data de término.")

	// Weekday labels
	message.SetString(lang, "day.sunday", "Domingo")
	message.SetString(lang, "day.monday", "Segunda-feira")
	message.SetString(lang, "day.tuesday", "Terça-feira")
	message.SetString(lang, "day.wednesday", "Quarta-feira")
	message.SetString(lang, "day.thursday", "Quinta-feira")
	message.SetString(lang, "day.friday", "Sexta-feira")
	message.SetString(lang, "day.saturday", "Sábado")

	// Landing page
	message.SetString(lang, "landing.tagline", "Planejamento de homeschool sem atrapalhar.")
	message.SetString(lang, "landing.lede", "Planeje anos letivos, monte cronogramas de cursos e acompanhe o trabalho diário dos seus estudantes sem brigar com as ferramentas.")
	message.SetString(lang, "landing.cta_signup", "Crie sua escola")
	message.SetString(lang, "landing.cta_login", "Entrar")
	message.SetString(lang, "landing.feature.planning.title", "Projete o ano")
	message.SetString(lang, "landing.feature.planning.body", "Defina dias de aula e recessos uma vez. Cada curso agenda suas tarefas em torno deles automaticamente.")
	message.SetString(lang, "landing.feature.grading.title", "Avalie no seu ritmo")
	message.SetString(lang, "landing.feature.grading.body", "Marque trabalhos como avaliáveis e atribua notas em lote quando quiser.")
	message.SetString(lang, "landing.feature.checklist.title", "Imprima a semana")
	message.SetString(lang, "landing.feature.checklist.body", "Uma lista semanal por estudante, reduzida aos cursos que você escolher.")
	message.SetString(lang, "meta.description", "Software de planejamento de homeschool para agendar cursos, acompanhar o trabalho diário e avaliar.")

	// Login page
	message.SetString(lang, "login.heading", "Entrar")
	message.SetString(lang, "login.email", "Endereço de e-mail")
	message.SetString(lang, "login.password", "Senha")
	message.SetString(lang, "login.submit", "Entrar")
	message.SetString(lang, "login.signup_prompt", "Precisa de uma conta?")
	message.SetString(lang, "login.signup_link", "Crie uma")
	message.SetString(lang, "login.error.invalid", "Informe um e-mail e uma senha corretos.")

	// Signup page
	message.SetString(lang, "signup.heading", "Crie sua conta")
	message.SetString(lang, "signup.email", "Endereço de e-mail")
	message.SetString(lang, "signup.password", "Senha")
	message.SetString(lang, "signup.password_confirm", "Confirme a senha")
	message.SetString(lang, "signup.submit", "Criar conta")
	message.SetString(lang, "signup.login_prompt", "Já tem uma conta?")
	message.SetString(lang, "signup.login_link", "Entrar")
	message.SetString(lang, "signup.error.email_required", "Informe um endereço de e-mail válido.")
	message.SetString(lang, "signup.error.email_taken", "Já existe uma conta com esse e-mail.")
	message.SetString(lang, "signup.error.password_length", "A senha deve ter pelo menos 8 caracteres.")
	message.SetString(lang, "signup.error.password_mismatch", "As senhas não coincidem.")

	// Daily plan
	message.SetString(lang, "daily.heading", "Plano diário")
	message.SetString(lang, "daily.no_school_year", "Não há um ano letivo que inclua o dia de hoje.")
	message.SetString(lang, "daily.create_school_year", "Criar um ano letivo")
	message.SetString(lang, "daily.no_students", "Adicione um estudante para começar a planejar os dias de aula.")
	message.SetString(lang, "daily.add_student", "Adicionar um estudante")
	message.SetString(lang, "daily.off_day", "Hoje não há aula.")
	message.SetString(lang, "daily.next_school_day", "Mostrando o próximo dia de aula, %s.")
	message.SetString(lang, "daily.no_courses", "Nenhum curso agendado para este dia.")
	message.SetString(lang, "daily.not_enrolled", "Sem matrícula neste ano letivo.")
	message.SetString(lang, "daily.enroll", "Matricular")
	message.SetString(lang, "daily.up_next", "A seguir")
	message.SetString(lang, "daily.all_done", "Tudo em dia")
	message.SetString(lang, "daily.minutes", "%d minutos")
	message.SetString(lang, "daily.grade_banner", "Você tem trabalhos concluídos aguardando avaliação.")
	message.SetString(lang, "daily.grade_link", "Avaliar agora")

	// Students
	message.SetString(lang, "students.heading", "Estudantes")
	message.SetString(lang, "students.add", "Adicionar estudante")
	message.SetString(lang, "students.empty", "Você ainda não adicionou nenhum estudante.")
	message.SetString(lang, "students.col.student", "Estudante")
	message.SetString(lang, "students.col.enrollment", "Matrícula")
	message.SetString(lang, "students.enrolled_in", "Matriculado em %s")
	message.SetString(lang, "students.not_enrolled", "Sem matrícula")
	message.SetString(lang, "students.enroll", "Matricular")

	// Student create
	message.SetString(lang, "student_create.heading", "Adicionar um estudante")
	message.SetString(lang, "student_create.first_name", "Nome")
	message.SetString(lang, "student_create.last_name", "Sobrenome")
	message.SetString(lang, "student_create.submit", "Adicionar estudante")
	message.SetString(lang, "student_create.error.first_name_required", "O nome é obrigatório.")
	message.SetString(lang, "student_create.error.last_name_required", "O sobrenome é obrigatório.")

	// Student course schedule
	message.SetString(lang, "student_course.col.task", "Tarefa")
	message.SetString(lang, "student_course.col.date", "Data")
	message.SetString(lang, "student_course.col.status", "Situação")
	message.SetString(lang, "student_course.completed", "Concluída")
	message.SetString(lang, "student_course.planned", "Planejada")
	message.SetString(lang, "student_course.mark_done", "Concluir")
	message.SetString(lang, "student_course.undo", "Desfazer")
	message.SetString(lang, "student_course.show_completed", "Mostrar tarefas concluídas")
	message.SetString(lang, "student_course.hide_completed", "Ocultar tarefas concluídas")
	message.SetString(lang, "student_course.empty", "Este curso ainda não tem tarefas.")
	message.SetString(lang, "student_course.add_task", "Adicionar uma tarefa")
	message.SetString(lang, "student_course.grade", "Avaliar")

	// Grade single task
	message.SetString(lang, "grade_task.heading", "Avaliar tarefa")
	message.SetString(lang, "grade_task.score", "Nota")
	message.SetString(lang, "grade_task.submit", "Salvar nota")
	message.SetString(lang, "grade_task.error.score_range", "A nota deve estar entre 0 e 100.")

	// Grade landing
	message.SetString(lang, "grade.heading", "Avaliar trabalhos concluídos")
	message.SetString(lang, "grade.empty", "Não há trabalho concluído para avaliar no momento.")
	message.SetString(lang, "grade.skip_hint", "Deixe a nota em branco para pular por enquanto.")
	message.SetString(lang, "grade.submit", "Salvar notas")
	message.SetString(lang, "flash.grades.saved", "Notas salvas.")

	// Enrollment
	message.SetString(lang, "enroll.heading", "Matricular um estudante")
	message.SetString(lang, "enroll.heading_named", "Matricular %s")
	message.SetString(lang, "enroll.student", "Estudante")
	message.SetString(lang, "enroll.grade_level", "Série")
	message.SetString(lang, "enroll.submit", "Matricular")
	message.SetString(lang, "enroll.error.student_required", "Selecione um estudante.")
	message.SetString(lang, "enroll.error.grade_level_required", "Selecione uma série.")
	message.SetString(lang, "enroll.error.foreign_student", "Você não pode matricular esse estudante.")
	message.SetString(lang, "enroll.error.foreign_grade_level", "Você não pode matricular nessa série.")
	message.SetString(lang, "enroll.error.already_enrolled", "Esse estudante já está matriculado neste ano letivo.")
	message.SetString(lang, "flash.enroll.no_students", "Você precisa adicionar um estudante para matricular.")
	message.SetString(lang, "flash.enroll.all_enrolled", "Todos os estudantes estão matriculados no ano letivo.")
	message.SetString(lang, "flash.enroll.no_grade_levels", "Você precisa criar uma série para matricular um estudante.")

	// School years
	message.SetString(lang, "school_years.heading", "Anos letivos")
	message.SetString(lang, "school_years.add", "Adicionar ano letivo")
	message.SetString(lang, "school_years.empty", "Você ainda não criou nenhum ano letivo.")
	message.SetString(lang, "school_year_create.heading", "Adicionar um ano letivo")
	message.SetString(lang, "school_year_create.submit", "Adicionar ano letivo")
	message.SetString(lang, "school_year.runs", "De %s a %s")
	message.SetString(lang, "school_year.error.days_required", "Selecione pelo menos um dia de aula.")
	message.SetString(lang, "school_year.grade_levels", "Séries")
	message.SetString(lang, "school_year.enrolled_count", "%d matriculados")
	message.SetString(lang, "school_year.add_grade_level", "Adicionar série")
	message.SetString(lang, "school_year.no_grade_levels", "Nenhuma série ainda.")
	message.SetString(lang, "school_year.breaks", "Recessos")
	message.SetString(lang, "school_year.add_break", "Adicionar recesso")
	message.SetString(lang, "school_year.no_breaks", "Nenhum recesso agendado.")
	message.SetString(lang, "school_year.courses", "Cursos")
	message.SetString(lang, "school_year.add_course", "Adicionar curso")
	message.SetString(lang, "school_year.no_courses", "Nenhum curso ainda.")

	// Grade levels
	message.SetString(lang, "grade_level_create.heading", "Adicionar uma série")
	message.SetString(lang, "grade_level_create.submit", "Adicionar série")

	// School breaks
	message.SetString(lang, "school_break_create.heading", "Adicionar um recesso")
	message.SetString(lang, "school_break_create.submit", "Adicionar recesso")
	message.SetString(lang, "school_break.error.outside_year", "Um recesso deve estar dentro do ano letivo.")

	// Courses
	message.SetString(lang, "course_create.heading", "Adicionar um curso")
	message.SetString(lang, "course_create.submit", "Adicionar curso")
	message.SetString(lang, "course.error.grade_level_required", "Selecione pelo menos uma série.")
	message.SetString(lang, "course.grade_levels", "Séries")
	message.SetString(lang, "course.tasks", "Tarefas")
	message.SetString(lang, "course.add_task", "Adicionar tarefa")
	message.SetString(lang, "course.no_tasks", "Este curso ainda não tem tarefas.")
	message.SetString(lang, "course.badge.inactive", "Inativo")
	message.SetString(lang, "course.duration_minutes", "%d minutos")
	message.SetString(lang, "course.graded", "Avaliável")
	message.SetString(lang, "course.limited_to", "Restrita a %s")
	message.SetString(lang, "course.make_graded", "Exigir nota")
	message.SetString(lang, "course.remove_graded", "Remover exigência de nota")

	// Course tasks
	message.SetString(lang, "course_task_create.heading", "Adicionar uma tarefa")
	message.SetString(lang, "course_task.duration", "Duração (minutos)")
	message.SetString(lang, "course_task.graded", "Esta tarefa é avaliável")
	message.SetString(lang, "course_task.grade_level", "Restringir à série")
	message.SetString(lang, "course_task.grade_level_any", "Todas as séries")
	message.SetString(lang, "course_task_create.submit", "Adicionar tarefa")
	message.SetString(lang, "course_task.error.duration_positive", "A duração deve ser um número positivo de minutos.")

	// Weekly checklist
	message.SetString(lang, "checklist.heading", "Lista semanal")
	message.SetString(lang, "checklist.week_of", "Semana de %s")
	message.SetString(lang, "checklist.previous", "Semana anterior")
	message.SetString(lang, "checklist.next", "Próxima semana")
	message.SetString(lang, "checklist.this_week", "Esta semana")
	message.SetString(lang, "checklist.empty", "Não há um ano letivo que inclua esta semana.")
	message.SetString(lang, "checklist.no_tasks", "Nada agendado para esta semana.")
	message.SetString(lang, "checklist.edit", "Editar lista")
	message.SetString(lang, "checklist_edit.heading", "Editar lista semanal")
	message.SetString(lang, "checklist_edit.hint", "Desmarque um curso para ocultá-lo da lista desta semana.")
	message.SetString(lang, "checklist_edit.submit", "Salvar lista")

	// Settings
	message.SetString(lang, "settings.heading", "Configurações")
	message.SetString(lang, "settings.account", "Conta")
	message.SetString(lang, "settings.email", "Endereço de e-mail")
	message.SetString(lang, "settings.language", "Idioma")
	message.SetString(lang, "settings.save_language", "Salvar idioma")
	message.SetString(lang, "flash.settings.language_saved", "Preferência de idioma salva.")

	// Error pages
	message.SetString(lang, "error.not_found.title", "Página não encontrada")
	message.SetString(lang, "error.not_found.message", "Não encontramos a página que você procurava.")
	message.SetString(lang, "error.server.title", "Algo deu errado")
	message.SetString(lang, "error.server.message", "Ocorreu um erro inesperado. Tente novamente.")
	message.SetString(lang, "error.back_home", "Voltar para a página inicial")
	message.SetString(lang, "error.support", "Se isso continuar acontecendo, escreva para")
	message.SetString(lang, "error.invalid_input", "O formulário enviado era inválido.")
	message.SetString(lang, "error.unauthorized", "Você precisa entrar para fazer isso.")
	message.SetString(lang, "error.forbidden", "Você não tem permissão para fazer isso.")
	message.SetString(lang, "error.unavailable", "O serviço está temporariamente indisponível.")
}

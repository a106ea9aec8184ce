package handlers

import (
	"time"

	"github.com/you/remindersvc/domain"
)

type userView struct {
	ID         uint      `json:"id"`
	Nome       string    `json:"nome"`
	Email      string    `json:"email"`
	Telefone   string    `json:"telefone"`
	Status     string    `json:"status"`
	FotoURL    string    `json:"foto_url,omitempty"`
	Onboarding bool      `json:"onboarding"`
	CriadoEm   time.Time `json:"criado_em"`
}

func toUserView(u *domain.User) userView {
	return userView{
		ID:         u.ID,
		Nome:       u.Name,
		Email:      u.Email,
		Telefone:   u.Phone,
		Status:     u.Status,
		FotoURL:    u.PhotoURL,
		Onboarding: u.Onboarded,
		CriadoEm:   u.CreatedAt,
	}
}

type reminderView struct {
	ID                uint       `json:"id"`
	Titulo            string     `json:"titulo"`
	Descricao         string     `json:"descricao,omitempty"`
	Categoria         string     `json:"categoria"`
	Status            string     `json:"status"`
	Recorrente        bool       `json:"recorrente"`
	Frequencia        string     `json:"frequencia,omitempty"`
	Dia               int        `json:"dia,omitempty"`
	DiaSemana         string     `json:"dia_semana,omitempty"`
	Mes               string     `json:"mes,omitempty"`
	Hora              string     `json:"hora,omitempty"`
	DataHora          *time.Time `json:"data_hora,omitempty"`
	ProximaOcorrencia *time.Time `json:"proxima_ocorrencia,omitempty"`
	CriadoEm          time.Time  `json:"criado_em"`
	AtualizadoEm      time.Time  `json:"atualizado_em"`
}

func toReminderView(r *domain.Reminder, next *time.Time) reminderView {
	return reminderView{
		ID:                r.ID,
		Titulo:            r.Title,
		Descricao:         r.Description,
		Categoria:         r.Category,
		Status:            r.Status,
		Recorrente:        r.Recurring,
		Frequencia:        r.Frequency,
		Dia:               r.DayOfMonth,
		DiaSemana:         r.Weekday,
		Mes:               r.Month,
		Hora:              r.TimeOfDay,
		DataHora:          r.DateTime,
		ProximaOcorrencia: next,
		CriadoEm:          r.CreatedAt,
		AtualizadoEm:      r.UpdatedAt,
	}
}

type tagView struct {
	ID       uint      `json:"id"`
	Nome     string    `json:"nome"`
	Cor      string    `json:"cor"`
	Icone    string    `json:"icone,omitempty"`
	CriadoEm time.Time `json:"criado_em"`
}

func toTagView(t *domain.Tag) tagView {
	return tagView{
		ID:       t.ID,
		Nome:     t.Name,
		Cor:      t.Color,
		Icone:    t.Icon,
		CriadoEm: t.CreatedAt,
	}
}

func toTagViews(tags []domain.Tag) []tagView {
	views := make([]tagView, 0, len(tags))
	for i := range tags {
		views = append(views, toTagView(&tags[i]))
	}
	return views
}

type notificationView struct {
	ID         uint      `json:"id"`
	LembreteID uint      `json:"lembrete_id"`
	Canal      string    `json:"canal"`
	EnviadoEm  time.Time `json:"enviado_em"`
	Resultado  string    `json:"resultado"`
	Mensagem   string    `json:"mensagem,omitempty"`
	CriadoEm   time.Time `json:"criado_em"`
}

func toNotificationView(n *domain.Notification) notificationView {
	return notificationView{
		ID:         n.ID,
		LembreteID: n.ReminderID,
		Canal:      n.Channel,
		EnviadoEm:  n.SentAt,
		Resultado:  n.Outcome,
		Mensagem:   n.Message,
		CriadoEm:   n.CreatedAt,
	}
}

package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/uide-sports/campeonatos-api/models"
	"github.com/uide-sports/campeonatos-api/repositories"
	"github.com/uide-sports/campeonatos-api/storage"
)

// Fakes en memoria para los tests de servicios. Cada uno implementa la
// interfaz del repositorio sobre un map; los IDs se asignan en orden.

type fakeUserRepo struct {
	users  map[int]*models.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return repositories.ErrUserUsernameConflict
		}
		if u.Email == user.Email {
			return repositories.ErrUserEmailConflict
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) List(_ context.Context, role *models.UserRole) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if role == nil || u.Role == *role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) CountAll(_ context.Context) (int, error) {
	return len(r.users), nil
}

func (r *fakeUserRepo) add(user models.User) *models.User {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = &user
	return &user
}

type fakeChampionshipRepo struct {
	championships map[int]*models.Championship
	nextID        int
}

func newFakeChampionshipRepo() *fakeChampionshipRepo {
	return &fakeChampionshipRepo{championships: make(map[int]*models.Championship), nextID: 1}
}

func (r *fakeChampionshipRepo) Create(_ context.Context, c *models.Championship) error {
	for _, other := range r.championships {
		if other.Name == c.Name {
			return repositories.ErrChampionshipNameConflict
		}
	}
	c.ID = r.nextID
	r.nextID++
	c.CreatedAt = time.Now()
	cp := *c
	r.championships[c.ID] = &cp
	return nil
}

func (r *fakeChampionshipRepo) GetByID(_ context.Context, id int) (*models.Championship, error) {
	c, ok := r.championships[id]
	if !ok {
		return nil, repositories.ErrChampionshipNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeChampionshipRepo) List(_ context.Context, state *models.ChampionshipState) ([]models.Championship, error) {
	var out []models.Championship
	for _, c := range r.championships {
		if state == nil || c.State == *state {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeChampionshipRepo) Update(_ context.Context, c *models.Championship) error {
	if _, ok := r.championships[c.ID]; !ok {
		return repositories.ErrChampionshipNotFound
	}
	cp := *c
	r.championships[c.ID] = &cp
	return nil
}

func (r *fakeChampionshipRepo) UpdateState(_ context.Context, id int, state models.ChampionshipState) error {
	c, ok := r.championships[id]
	if !ok {
		return repositories.ErrChampionshipNotFound
	}
	c.State = state
	return nil
}

func (r *fakeChampionshipRepo) UpdateRulesKey(_ context.Context, id int, key *string) error {
	c, ok := r.championships[id]
	if !ok {
		return repositories.ErrChampionshipNotFound
	}
	c.RulesKey = key
	return nil
}

func (r *fakeChampionshipRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.championships[id]; !ok {
		return repositories.ErrChampionshipNotFound
	}
	delete(r.championships, id)
	return nil
}

func (r *fakeChampionshipRepo) CountAll(_ context.Context) (int, error) {
	return len(r.championships), nil
}

func (r *fakeChampionshipRepo) CountByState(_ context.Context, state models.ChampionshipState) (int, error) {
	count := 0
	for _, c := range r.championships {
		if c.State == state {
			count++
		}
	}
	return count, nil
}

func (r *fakeChampionshipRepo) add(c models.Championship) *models.Championship {
	c.ID = r.nextID
	r.nextID++
	r.championships[c.ID] = &c
	return &c
}

type fakeTeamRepo struct {
	teams  map[int]*models.Team
	nextID int
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[int]*models.Team), nextID: 1}
}

func (r *fakeTeamRepo) Create(_ context.Context, team *models.Team) error {
	for _, other := range r.teams {
		if other.ChampionshipID == team.ChampionshipID && other.Name == team.Name {
			return repositories.ErrTeamNameConflict
		}
	}
	team.ID = r.nextID
	r.nextID++
	team.CreatedAt = time.Now()
	cp := *team
	r.teams[team.ID] = &cp
	return nil
}

func (r *fakeTeamRepo) GetByID(_ context.Context, id int) (*models.Team, error) {
	team, ok := r.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	cp := *team
	return &cp, nil
}

func (r *fakeTeamRepo) ListByChampionship(_ context.Context, championshipID int) ([]models.Team, error) {
	var out []models.Team
	for _, team := range r.teams {
		if team.ChampionshipID == championshipID {
			out = append(out, *team)
		}
	}
	return out, nil
}

func (r *fakeTeamRepo) ListByDelegate(_ context.Context, delegateID int) ([]models.Team, error) {
	var out []models.Team
	for _, team := range r.teams {
		if team.DelegateID != nil && *team.DelegateID == delegateID {
			out = append(out, *team)
		}
	}
	return out, nil
}

func (r *fakeTeamRepo) Update(_ context.Context, team *models.Team) error {
	if _, ok := r.teams[team.ID]; !ok {
		return repositories.ErrTeamNotFound
	}
	cp := *team
	r.teams[team.ID] = &cp
	return nil
}

func (r *fakeTeamRepo) UpdateLogoKey(_ context.Context, id int, key *string) error {
	team, ok := r.teams[id]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	team.LogoKey = key
	return nil
}

func (r *fakeTeamRepo) SetApproved(_ context.Context, _ repositories.SQLExecutor, id int, approved bool) error {
	team, ok := r.teams[id]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	team.Approved = approved
	return nil
}

func (r *fakeTeamRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.teams[id]; !ok {
		return repositories.ErrTeamNotFound
	}
	delete(r.teams, id)
	return nil
}

func (r *fakeTeamRepo) CountAll(_ context.Context) (int, error) {
	return len(r.teams), nil
}

func (r *fakeTeamRepo) CountPendingApproval(_ context.Context) (int, error) {
	count := 0
	for _, team := range r.teams {
		if !team.Approved {
			count++
		}
	}
	return count, nil
}

func (r *fakeTeamRepo) add(team models.Team) *models.Team {
	team.ID = r.nextID
	r.nextID++
	r.teams[team.ID] = &team
	return &team
}

type fakePlayerRepo struct {
	players map[int]*models.Player
	nextID  int
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: make(map[int]*models.Player), nextID: 1}
}

func (r *fakePlayerRepo) Create(_ context.Context, player *models.Player) error {
	for _, other := range r.players {
		if other.TeamID == player.TeamID && other.JerseyNumber == player.JerseyNumber {
			return repositories.ErrPlayerJerseyConflict
		}
		if other.UserID == player.UserID {
			return repositories.ErrPlayerUserConflict
		}
	}
	player.ID = r.nextID
	r.nextID++
	player.CreatedAt = time.Now()
	cp := *player
	r.players[player.ID] = &cp
	return nil
}

func (r *fakePlayerRepo) GetByID(_ context.Context, id int) (*models.Player, error) {
	player, ok := r.players[id]
	if !ok {
		return nil, repositories.ErrPlayerNotFound
	}
	cp := *player
	return &cp, nil
}

func (r *fakePlayerRepo) GetByUserID(_ context.Context, userID int) (*models.Player, error) {
	for _, p := range r.players {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repositories.ErrPlayerNotFound
}

func (r *fakePlayerRepo) ListByTeam(_ context.Context, teamID int) ([]models.Player, error) {
	var out []models.Player
	for _, p := range r.players {
		if p.TeamID == teamID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePlayerRepo) CountByTeam(_ context.Context, teamID int, excludeID *int) (int, error) {
	count := 0
	for _, p := range r.players {
		if p.TeamID != teamID {
			continue
		}
		if excludeID != nil && p.ID == *excludeID {
			continue
		}
		count++
	}
	return count, nil
}

func (r *fakePlayerRepo) Update(_ context.Context, player *models.Player) error {
	if _, ok := r.players[player.ID]; !ok {
		return repositories.ErrPlayerNotFound
	}
	for _, other := range r.players {
		if other.ID != player.ID && other.TeamID == player.TeamID && other.JerseyNumber == player.JerseyNumber {
			return repositories.ErrPlayerJerseyConflict
		}
	}
	cp := *player
	r.players[player.ID] = &cp
	return nil
}

func (r *fakePlayerRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.players[id]; !ok {
		return repositories.ErrPlayerNotFound
	}
	delete(r.players, id)
	return nil
}

func (r *fakePlayerRepo) add(player models.Player) *models.Player {
	player.ID = r.nextID
	r.nextID++
	r.players[player.ID] = &player
	return &player
}

type fakePaymentRepo struct {
	payments map[int]*models.Payment
	nextID   int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[int]*models.Payment), nextID: 1}
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *models.Payment) error {
	for _, other := range r.payments {
		if other.TeamID == payment.TeamID {
			return repositories.ErrPaymentTeamConflict
		}
	}
	payment.ID = r.nextID
	r.nextID++
	cp := *payment
	r.payments[payment.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, id int) (*models.Payment, error) {
	payment, ok := r.payments[id]
	if !ok {
		return nil, repositories.ErrPaymentNotFound
	}
	cp := *payment
	return &cp, nil
}

func (r *fakePaymentRepo) GetByTeamID(_ context.Context, teamID int) (*models.Payment, error) {
	for _, p := range r.payments {
		if p.TeamID == teamID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repositories.ErrPaymentNotFound
}

func (r *fakePaymentRepo) ListByState(_ context.Context, state models.PaymentState) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.payments {
		if p.State == state {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) UpdateReceiptKey(_ context.Context, id int, key *string) error {
	payment, ok := r.payments[id]
	if !ok {
		return repositories.ErrPaymentNotFound
	}
	payment.ReceiptKey = key
	return nil
}

func (r *fakePaymentRepo) UpdateState(_ context.Context, _ repositories.SQLExecutor, id int, state models.PaymentState) error {
	payment, ok := r.payments[id]
	if !ok {
		return repositories.ErrPaymentNotFound
	}
	payment.State = state
	return nil
}

func (r *fakePaymentRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.payments[id]; !ok {
		return repositories.ErrPaymentNotFound
	}
	delete(r.payments, id)
	return nil
}

func (r *fakePaymentRepo) add(payment models.Payment) *models.Payment {
	payment.ID = r.nextID
	r.nextID++
	r.payments[payment.ID] = &payment
	return &payment
}

type fakeBankCodeRepo struct {
	codes  map[int]*models.BankCode
	nextID int
}

func newFakeBankCodeRepo() *fakeBankCodeRepo {
	return &fakeBankCodeRepo{codes: make(map[int]*models.BankCode), nextID: 1}
}

func (r *fakeBankCodeRepo) Create(_ context.Context, code *models.BankCode) error {
	for _, other := range r.codes {
		if other.Bank == code.Bank {
			return repositories.ErrBankCodeBankConflict
		}
	}
	code.ID = r.nextID
	r.nextID++
	cp := *code
	r.codes[code.ID] = &cp
	return nil
}

func (r *fakeBankCodeRepo) GetByID(_ context.Context, id int) (*models.BankCode, error) {
	code, ok := r.codes[id]
	if !ok {
		return nil, repositories.ErrBankCodeNotFound
	}
	cp := *code
	return &cp, nil
}

func (r *fakeBankCodeRepo) GetAll(_ context.Context) ([]models.BankCode, error) {
	var out []models.BankCode
	for _, code := range r.codes {
		out = append(out, *code)
	}
	return out, nil
}

func (r *fakeBankCodeRepo) Update(_ context.Context, code *models.BankCode) error {
	if _, ok := r.codes[code.ID]; !ok {
		return repositories.ErrBankCodeNotFound
	}
	cp := *code
	r.codes[code.ID] = &cp
	return nil
}

func (r *fakeBankCodeRepo) UpdateQRKey(_ context.Context, id int, key *string) error {
	code, ok := r.codes[id]
	if !ok {
		return repositories.ErrBankCodeNotFound
	}
	code.QRKey = key
	return nil
}

func (r *fakeBankCodeRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.codes[id]; !ok {
		return repositories.ErrBankCodeNotFound
	}
	delete(r.codes, id)
	return nil
}

func (r *fakeBankCodeRepo) add(code models.BankCode) *models.BankCode {
	code.ID = r.nextID
	r.nextID++
	r.codes[code.ID] = &code
	return &code
}

type fakeMatchRepo struct {
	matches map[int]*models.Match
	nextID  int
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: make(map[int]*models.Match), nextID: 1}
}

func (r *fakeMatchRepo) Create(_ context.Context, match *models.Match) error {
	match.ID = r.nextID
	r.nextID++
	match.CreatedAt = time.Now()
	cp := *match
	r.matches[match.ID] = &cp
	return nil
}

func (r *fakeMatchRepo) GetByID(_ context.Context, id int) (*models.Match, error) {
	match, ok := r.matches[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	cp := *match
	return &cp, nil
}

func (r *fakeMatchRepo) ListByChampionship(_ context.Context, championshipID int) ([]models.Match, error) {
	var out []models.Match
	for _, m := range r.matches {
		if m.ChampionshipID == championshipID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) ListBySlot(_ context.Context, championshipID int, date time.Time, startTime string, excludeID *int) ([]models.Match, error) {
	var out []models.Match
	for _, m := range r.matches {
		if m.ChampionshipID != championshipID || !m.Date.Equal(date) || m.StartTime != startTime {
			continue
		}
		if excludeID != nil && m.ID == *excludeID {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeMatchRepo) Update(_ context.Context, match *models.Match) error {
	if _, ok := r.matches[match.ID]; !ok {
		return repositories.ErrMatchNotFound
	}
	cp := *match
	r.matches[match.ID] = &cp
	return nil
}

func (r *fakeMatchRepo) UpdateResult(_ context.Context, id int, homeScore, awayScore int, state models.MatchState) error {
	match, ok := r.matches[id]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	match.HomeScore = &homeScore
	match.AwayScore = &awayScore
	match.State = state
	return nil
}

func (r *fakeMatchRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.matches[id]; !ok {
		return repositories.ErrMatchNotFound
	}
	delete(r.matches, id)
	return nil
}

func (r *fakeMatchRepo) CountOnDate(_ context.Context, date time.Time) (int, error) {
	count := 0
	for _, m := range r.matches {
		if m.Date.Equal(date) {
			count++
		}
	}
	return count, nil
}

func (r *fakeMatchRepo) add(match models.Match) *models.Match {
	match.ID = r.nextID
	r.nextID++
	r.matches[match.ID] = &match
	return &match
}

type fakeRefereeRepo struct {
	referees map[int]*models.Referee
	nextID   int
}

func newFakeRefereeRepo() *fakeRefereeRepo {
	return &fakeRefereeRepo{referees: make(map[int]*models.Referee), nextID: 1}
}

func (r *fakeRefereeRepo) Create(_ context.Context, referee *models.Referee) error {
	referee.ID = r.nextID
	r.nextID++
	cp := *referee
	r.referees[referee.ID] = &cp
	return nil
}

func (r *fakeRefereeRepo) GetByID(_ context.Context, id int) (*models.Referee, error) {
	referee, ok := r.referees[id]
	if !ok {
		return nil, repositories.ErrRefereeNotFound
	}
	cp := *referee
	return &cp, nil
}

func (r *fakeRefereeRepo) GetAll(_ context.Context, onlyActive bool) ([]models.Referee, error) {
	var out []models.Referee
	for _, referee := range r.referees {
		if onlyActive && !referee.Active {
			continue
		}
		out = append(out, *referee)
	}
	return out, nil
}

func (r *fakeRefereeRepo) Update(_ context.Context, referee *models.Referee) error {
	if _, ok := r.referees[referee.ID]; !ok {
		return repositories.ErrRefereeNotFound
	}
	cp := *referee
	r.referees[referee.ID] = &cp
	return nil
}

func (r *fakeRefereeRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.referees[id]; !ok {
		return repositories.ErrRefereeNotFound
	}
	delete(r.referees, id)
	return nil
}

func (r *fakeRefereeRepo) add(referee models.Referee) *models.Referee {
	referee.ID = r.nextID
	r.nextID++
	r.referees[referee.ID] = &referee
	return &referee
}

type fakeSuspensionRepo struct {
	suspensions map[int]*models.Suspension
	nextID      int
}

func newFakeSuspensionRepo() *fakeSuspensionRepo {
	return &fakeSuspensionRepo{suspensions: make(map[int]*models.Suspension), nextID: 1}
}

func (r *fakeSuspensionRepo) Create(_ context.Context, suspension *models.Suspension) error {
	suspension.ID = r.nextID
	r.nextID++
	suspension.CreatedAt = time.Now()
	cp := *suspension
	r.suspensions[suspension.ID] = &cp
	return nil
}

func (r *fakeSuspensionRepo) GetByID(_ context.Context, id int) (*models.Suspension, error) {
	suspension, ok := r.suspensions[id]
	if !ok {
		return nil, repositories.ErrSuspensionNotFound
	}
	cp := *suspension
	return &cp, nil
}

func (r *fakeSuspensionRepo) GetAll(_ context.Context) ([]models.Suspension, error) {
	var out []models.Suspension
	for _, s := range r.suspensions {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSuspensionRepo) ListByPlayer(_ context.Context, playerID int) ([]models.Suspension, error) {
	var out []models.Suspension
	for _, s := range r.suspensions {
		if s.PlayerID == playerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSuspensionRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.suspensions[id]; !ok {
		return repositories.ErrSuspensionNotFound
	}
	delete(r.suspensions, id)
	return nil
}

func (r *fakeSuspensionRepo) CountActiveOn(_ context.Context, date time.Time) (int, error) {
	count := 0
	for _, s := range r.suspensions {
		if s.ActiveOn(date) {
			count++
		}
	}
	return count, nil
}

type fakeStatisticRepo struct {
	teamStats   map[string]*models.TeamStatistic
	playerStats map[string]*models.PlayerStatistic
}

func newFakeStatisticRepo() *fakeStatisticRepo {
	return &fakeStatisticRepo{
		teamStats:   make(map[string]*models.TeamStatistic),
		playerStats: make(map[string]*models.PlayerStatistic),
	}
}

func statKey(championshipID, id int) string {
	return fmt.Sprintf("%d/%d", championshipID, id)
}

func (r *fakeStatisticRepo) UpsertTeamStatistic(_ context.Context, stat *models.TeamStatistic) error {
	cp := *stat
	r.teamStats[statKey(stat.ChampionshipID, stat.TeamID)] = &cp
	return nil
}

func (r *fakeStatisticRepo) GetTeamStatistic(_ context.Context, championshipID, teamID int) (*models.TeamStatistic, error) {
	stat, ok := r.teamStats[statKey(championshipID, teamID)]
	if !ok {
		return nil, repositories.ErrTeamStatisticNotFound
	}
	cp := *stat
	return &cp, nil
}

func (r *fakeStatisticRepo) ListTeamStatistics(_ context.Context, championshipID int) ([]models.TeamStatistic, error) {
	var out []models.TeamStatistic
	for _, stat := range r.teamStats {
		if stat.ChampionshipID == championshipID {
			out = append(out, *stat)
		}
	}
	return out, nil
}

func (r *fakeStatisticRepo) UpsertPlayerStatistic(_ context.Context, stat *models.PlayerStatistic) error {
	cp := *stat
	r.playerStats[statKey(stat.ChampionshipID, stat.PlayerID)] = &cp
	return nil
}

func (r *fakeStatisticRepo) GetPlayerStatistic(_ context.Context, championshipID, playerID int) (*models.PlayerStatistic, error) {
	stat, ok := r.playerStats[statKey(championshipID, playerID)]
	if !ok {
		return nil, repositories.ErrPlayerStatisticNotFound
	}
	cp := *stat
	return &cp, nil
}

func (r *fakeStatisticRepo) ListPlayerStatistics(_ context.Context, championshipID int) ([]models.PlayerStatistic, error) {
	var out []models.PlayerStatistic
	for _, stat := range r.playerStats {
		if stat.ChampionshipID == championshipID {
			out = append(out, *stat)
		}
	}
	return out, nil
}

type fakeSportRepo struct {
	sports map[int]*models.Sport
	nextID int
}

func newFakeSportRepo() *fakeSportRepo {
	return &fakeSportRepo{sports: make(map[int]*models.Sport), nextID: 1}
}

func (r *fakeSportRepo) Create(_ context.Context, sport *models.Sport) error {
	for _, other := range r.sports {
		if other.Name == sport.Name {
			return repositories.ErrSportNameConflict
		}
	}
	sport.ID = r.nextID
	r.nextID++
	cp := *sport
	r.sports[sport.ID] = &cp
	return nil
}

func (r *fakeSportRepo) GetByID(_ context.Context, id int) (*models.Sport, error) {
	sport, ok := r.sports[id]
	if !ok {
		return nil, repositories.ErrSportNotFound
	}
	cp := *sport
	return &cp, nil
}

func (r *fakeSportRepo) GetAll(_ context.Context) ([]models.Sport, error) {
	var out []models.Sport
	for _, sport := range r.sports {
		out = append(out, *sport)
	}
	return out, nil
}

func (r *fakeSportRepo) Update(_ context.Context, sport *models.Sport) error {
	if _, ok := r.sports[sport.ID]; !ok {
		return repositories.ErrSportNotFound
	}
	cp := *sport
	r.sports[sport.ID] = &cp
	return nil
}

func (r *fakeSportRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.sports[id]; !ok {
		return repositories.ErrSportNotFound
	}
	delete(r.sports, id)
	return nil
}

func (r *fakeSportRepo) add(sport models.Sport) *models.Sport {
	sport.ID = r.nextID
	r.nextID++
	r.sports[sport.ID] = &sport
	return &sport
}

type fakeChampionshipTypeRepo struct {
	types  map[int]*models.ChampionshipType
	nextID int
}

func newFakeChampionshipTypeRepo() *fakeChampionshipTypeRepo {
	return &fakeChampionshipTypeRepo{types: make(map[int]*models.ChampionshipType), nextID: 1}
}

func (r *fakeChampionshipTypeRepo) Create(_ context.Context, t *models.ChampionshipType) error {
	for _, other := range r.types {
		if other.Name == t.Name {
			return repositories.ErrChampionshipTypeNameConflict
		}
	}
	t.ID = r.nextID
	r.nextID++
	cp := *t
	r.types[t.ID] = &cp
	return nil
}

func (r *fakeChampionshipTypeRepo) GetByID(_ context.Context, id int) (*models.ChampionshipType, error) {
	t, ok := r.types[id]
	if !ok {
		return nil, repositories.ErrChampionshipTypeNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeChampionshipTypeRepo) GetAll(_ context.Context) ([]models.ChampionshipType, error) {
	var out []models.ChampionshipType
	for _, t := range r.types {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeChampionshipTypeRepo) Update(_ context.Context, t *models.ChampionshipType) error {
	if _, ok := r.types[t.ID]; !ok {
		return repositories.ErrChampionshipTypeNotFound
	}
	cp := *t
	r.types[t.ID] = &cp
	return nil
}

func (r *fakeChampionshipTypeRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.types[id]; !ok {
		return repositories.ErrChampionshipTypeNotFound
	}
	delete(r.types, id)
	return nil
}

func (r *fakeChampionshipTypeRepo) add(t models.ChampionshipType) *models.ChampionshipType {
	t.ID = r.nextID
	r.nextID++
	r.types[t.ID] = &t
	return &t
}

// fakeUploader guarda los objetos subidos en memoria.
type fakeUploader struct {
	objects map[string][]byte
	deleted []string
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{objects: make(map[string][]byte)}
}

func (u *fakeUploader) Upload(_ context.Context, key, _ string, reader io.Reader) (*storage.UploadResult, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return nil, err
	}
	u.objects[key] = buf.Bytes()
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *fakeUploader) Delete(_ context.Context, key string) error {
	delete(u.objects, key)
	u.deleted = append(u.deleted, key)
	return nil
}

func (u *fakeUploader) GetPublicURL(key string) string {
	return "https://cdn.test/" + strings.TrimPrefix(key, "/")
}

// fakeBroadcaster registra los eventos de partido emitidos.
type fakeBroadcaster struct {
	events []int
}

func (b *fakeBroadcaster) BroadcastMatchUpdate(championshipID int, _ interface{}) {
	b.events = append(b.events, championshipID)
}

// passThroughTx ejecuta la función de revisión sin transacción real; los fakes
// ignoran el SQLExecutor.
func passThroughTx(_ context.Context, fn func(exec repositories.SQLExecutor) error) error {
	return fn(nil)
}

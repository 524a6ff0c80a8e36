package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/seu-usuario/clientes-api/pkg/config"
	"github.com/seu-usuario/clientes-api/pkg/logger"
)

// CLI de migrações: aplica os arquivos de migrations/ no banco configurado.
//
//	migrate up      aplica todas as migrações pendentes
//	migrate down    desfaz a última migração
//	migrate version mostra a versão atual do schema
func main() {
	var migrationsPath string
	flag.StringVar(&migrationsPath, "path", "migrations", "diretório das migrações")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "uso: migrate [-path dir] up|down|version")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	m, err := migrate.New("file://"+migrationsPath, pgxURL(cfg.DB))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir migrador")
	}
	defer m.Close()

	switch args[0] {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			log.Fatal().Err(verr).Msg("ler versão")
		}
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("versão do schema")
		return
	default:
		fmt.Fprintf(os.Stderr, "comando desconhecido: %s\n", args[0])
		os.Exit(1)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal().Err(err).Msg("aplicar migrações")
	}
	log.Info().Str("command", args[0]).Msg("migrações aplicadas")
}

// pgxURL troca o scheme do DSN para o driver pgx/v5 do golang-migrate.
func pgxURL(db config.DBConfig) string {
	dsn := db.ConnectionString()
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if len(dsn) > len(prefix) && dsn[:len(prefix)] == prefix {
			return "pgx5://" + dsn[len(prefix):]
		}
	}
	return dsn
}

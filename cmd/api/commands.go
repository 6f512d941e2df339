package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"locksmith_invoicing/internal/adapter/http/routes"
	"locksmith_invoicing/internal/adapter/persistence/repository"
	"locksmith_invoicing/internal/config"
	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/infrastructure/database"
	"locksmith_invoicing/internal/infrastructure/logger"
	"locksmith_invoicing/internal/infrastructure/security"
	"locksmith_invoicing/internal/usecase"
)

var errPasswordRequired = errors.New("password is required")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "locksmith-invoicing",
		Short:         "Locksmith job invoicing on QuickBooks Online",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
	root.AddCommand(newServeCmd(), newHashPasswordCmd(), newSeedOperatorCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("starting", zap.String("version", Version), zap.String("storage", cfg.StorageBackend))
	return routes.Run(ctx, cfg, log)
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hashpw [password]",
		Short: "Print a bcrypt hash for OPERATORS_JSON",
		Long:  "Prints a bcrypt hash of the password argument, or of the first line of stdin when no argument is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := passwordFrom(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			hash, err := security.NewPasswordHasher(security.BcryptCost).Hash(password)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
}

type seedOptions struct {
	email     string
	password  string
	firstName string
	lastName  string
	role      string
	printOnly bool
}

func newSeedOperatorCmd() *cobra.Command {
	var opts seedOptions
	cmd := &cobra.Command{
		Use:   "seed-operator",
		Short: "Create or replace an operator in DynamoDB",
		Long: "Hashes the password and upserts the operator into the operators table. " +
			"With --print the OPERATORS_JSON entry is written to stdout instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.password == "" {
				pw, err := passwordFrom(nil, cmd.InOrStdin())
				if err != nil {
					return err
				}
				opts.password = pw
			}
			op, err := buildOperator(opts)
			if err != nil {
				return err
			}
			if opts.printOnly {
				return printSeed(cmd.OutOrStdout(), op)
			}
			return upsertOperator(cmd.Context(), op, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.email, "email", "", "operator email (required)")
	f.StringVar(&opts.password, "password", "", "plain password; read from stdin when empty")
	f.StringVar(&opts.firstName, "first-name", "", "first name")
	f.StringVar(&opts.lastName, "last-name", "", "last name")
	f.StringVar(&opts.role, "role", string(entities.OperatorRoleLocksmith), "admin | owner | locksmith")
	f.BoolVar(&opts.printOnly, "print", false, "print the OPERATORS_JSON entry instead of writing to DynamoDB")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func buildOperator(opts seedOptions) (entities.Operator, error) {
	email := strings.ToLower(strings.TrimSpace(opts.email))
	if email == "" {
		return entities.Operator{}, errors.New("email is required")
	}
	if len(opts.password) < usecase.MinPasswordLength {
		return entities.Operator{}, fmt.Errorf("password must be at least %d characters", usecase.MinPasswordLength)
	}
	role := entities.OperatorRole(strings.ToLower(strings.TrimSpace(opts.role)))
	switch role {
	case entities.OperatorRoleAdmin, entities.OperatorRoleOwner, entities.OperatorRoleLocksmith:
	default:
		return entities.Operator{}, fmt.Errorf("unknown role %q", opts.role)
	}
	hash, err := security.NewPasswordHasher(security.BcryptCost).Hash(opts.password)
	if err != nil {
		return entities.Operator{}, err
	}
	return entities.Operator{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(opts.firstName),
		LastName:     strings.TrimSpace(opts.lastName),
		Role:         role,
	}, nil
}

func printSeed(w io.Writer, op entities.Operator) error {
	enc := json.NewEncoder(w)
	return enc.Encode(map[string]string{
		"email":         op.Email,
		"password_hash": op.PasswordHash,
		"first_name":    op.FirstName,
		"last_name":     op.LastName,
		"role":          string(op.Role),
	})
}

func upsertOperator(ctx context.Context, op entities.Operator, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return err
	}
	if database.LocalEndpoint() {
		if err := database.EnsureTable(ctx, ddb, repository.OperatorsTableName(), "email"); err != nil {
			return err
		}
	}
	saved, err := repository.NewOperatorDynamoRepository(ddb).Upsert(ctx, op)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "operator %s saved (%s)\n", saved.Email, saved.Role)
	return err
}

func passwordFrom(args []string, in io.Reader) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errPasswordRequired
	}
	return line, nil
}

// Package console drives one account through the interactive menu.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/api-sage/bank-account-console/src/internal/adapter/console/models"
	"github.com/api-sage/bank-account-console/src/internal/domain"
	"github.com/api-sage/bank-account-console/src/internal/logger"
	"github.com/api-sage/bank-account-console/src/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
)

const (
	ChoiceDeposit  = 1
	ChoiceWithdraw = 2
	ChoiceDisplay  = 3
	ChoiceExit     = 4
)

const menuText = "\nChoose From Below Options:\n1. Deposit\n2. Withdraw\n3. Display Account Info\n4. Exit\nEnter choice: "

type Session struct {
	service service_interfaces.AccountService
	in      *lineReader
	out     io.Writer
	style   style
}

type Option func(*Session)

// WithColor forces colour on or off instead of detecting it from out.
func WithColor(enabled bool) Option {
	return func(s *Session) {
		s.style = style{color: enabled}
	}
}

func NewSession(service service_interfaces.AccountService, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		service: service,
		in:      newLineReader(in),
		out:     out,
		style:   detectStyle(out),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run captures the account details and then serves the menu until the user exits.
// It returns nil only after the exit choice.
func (s *Session) Run(ctx context.Context) error {
	if err := s.Initialize(ctx); err != nil {
		return err
	}
	return s.Loop(ctx)
}

func (s *Session) Initialize(ctx context.Context) error {
	s.print(s.style.heading("===Enter Bank Account Details===") + "\n\nEnter depositor name: ")
	name, err := s.in.readLine()
	if err != nil {
		return err
	}

	s.print("Enter account number: ")
	number, err := s.in.readLine()
	if err != nil {
		return err
	}

	s.print("Enter account type: ")
	accountType, err := s.in.readLine()
	if err != nil {
		return err
	}

	var balance decimal.Decimal
	for {
		s.print("Enter initial balance: ")
		amount, ok, err := s.in.readAmount()
		if err != nil {
			return err
		}
		if ok {
			balance = amount
			break
		}
	}

	_, err = s.service.OpenAccount(ctx, models.OpenAccountRequest{
		DepositorName:  name,
		AccountNumber:  number,
		AccountType:    accountType,
		InitialBalance: balance,
	})
	if err != nil {
		return fmt.Errorf("open account: %w", err)
	}
	return nil
}

func (s *Session) Loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.print(menuText)
		// Non-numeric input reads as 0 and lands in the default branch.
		choice, err := s.in.readChoice()
		if err != nil {
			return err
		}

		switch choice {
		case ChoiceDeposit:
			if err := s.deposit(ctx); err != nil {
				return err
			}
		case ChoiceWithdraw:
			if err := s.withdraw(ctx); err != nil {
				return err
			}
		case ChoiceDisplay:
			if err := s.display(ctx); err != nil {
				return err
			}
		case ChoiceExit:
			s.print("Exiting Program")
			return nil
		default:
			logger.Info("console invalid menu choice", logger.Fields{"choice": choice})
			s.println(s.style.failure(domain.ErrInvalidMenuChoice.Error() + "."))
		}
	}
}

func (s *Session) deposit(ctx context.Context) error {
	s.print("Enter amount to deposit: ")
	amount, _, err := s.in.readAmount()
	if err != nil {
		return err
	}

	resp, err := s.service.DepositFunds(ctx, models.DepositFundsRequest{Amount: amount})
	if err != nil {
		return s.reportFailure(resp.Message, err)
	}
	s.println(s.style.success(resp.Message + "."))
	s.println("Balance: " + resp.Data.Balance)
	return nil
}

func (s *Session) withdraw(ctx context.Context) error {
	s.print("Enter amount to withdraw: ")
	amount, _, err := s.in.readAmount()
	if err != nil {
		return err
	}

	resp, err := s.service.WithdrawFunds(ctx, models.WithdrawFundsRequest{Amount: amount})
	if err != nil {
		return s.reportFailure(resp.Message, err)
	}
	s.println(s.style.success(resp.Message + "."))
	s.println("Balance: " + resp.Data.Balance)
	return nil
}

func (s *Session) display(ctx context.Context) error {
	resp, err := s.service.GetAccount(ctx)
	if err != nil {
		return fmt.Errorf("get account: %w", err)
	}
	account := resp.Data
	s.println("Depositor Name: " + account.DepositorName)
	s.println("Account Number: " + account.AccountNumber)
	s.println("Account Type: " + account.AccountType)
	s.println("Balance Amount: " + account.Balance)
	return nil
}

// reportFailure prints domain rejections and keeps the loop going.
// Anything else ends the session.
func (s *Session) reportFailure(message string, err error) error {
	if domain.IsInvalidAmount(err) || errors.Is(err, domain.ErrInsufficientBalance) {
		s.println(s.style.failure(message + "."))
		return nil
	}
	return err
}

func (s *Session) print(text string) {
	_, _ = io.WriteString(s.out, text)
}

func (s *Session) println(text string) {
	s.print(text + "\n")
}

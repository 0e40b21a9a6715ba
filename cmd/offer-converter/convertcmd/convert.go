/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package convertcmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/hyperledger/aries-framework-go/component/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hyperledger/aries-credoffer/pkg/didcomm/common/service"
	"github.com/hyperledger/aries-credoffer/pkg/didcomm/protocol/issuecredential"
	"github.com/hyperledger/aries-credoffer/pkg/didcomm/protocol/issuecredential/legacy"
)

const (
	// input flag.
	inputFlagName      = "input"
	inputEnvKey        = "OFFERCONV_INPUT"
	inputFlagShorthand = "i"
	inputFlagUsage     = "Path of the JSON message to convert. Reads standard input if not set or set to '-'." +
		" Alternatively, this can be set with the following environment variable: " + inputEnvKey

	// log level.
	logLevelFlagName  = "log-level"
	logLevelEnvKey    = "OFFERCONV_LOG_LEVEL"
	logLevelFlagUsage = "Log level." +
		" Possible values [INFO] [DEBUG] [ERROR] [WARNING] [CRITICAL] . Defaults to INFO if not set." +
		" Alternatively, this can be set with the following environment variable: " + logLevelEnvKey

	// pretty flag.
	prettyFlagName      = "pretty"
	prettyEnvKey        = "OFFERCONV_PRETTY"
	prettyFlagShorthand = "p"
	prettyFlagUsage     = "Indent the converted message." +
		" Possible values [true] [false]. Defaults to false if not set." +
		" Alternatively, this can be set with the following environment variable: " + prettyEnvKey

	stdinInput = "-"
)

var logger = log.New("aries-framework/offer-converter") //nolint:gochecknoglobals

type converter func(raw []byte) (interface{}, error)

type convertParameters struct {
	input  string
	pretty bool
}

// FromLegacyCmd returns the Cobra command converting a legacy offer into an offer-credential message.
func FromLegacyCmd() *cobra.Command {
	return createCmd(&cobra.Command{
		Use:   "from-legacy",
		Short: "Convert a legacy credential offer",
		Long:  `Convert a legacy CRED_OFFER message into an issue-credential offer-credential message`,
	}, fromLegacy)
}

// ToLegacyCmd returns the Cobra command converting an offer-credential message into a legacy offer.
func ToLegacyCmd() *cobra.Command {
	return createCmd(&cobra.Command{
		Use:   "to-legacy",
		Short: "Convert an offer-credential message",
		Long: `Convert an issue-credential offer-credential message into a legacy CRED_OFFER message.` +
			` Comment, thread, mime-types and duplicate attribute names are not kept.`,
	}, toLegacy)
}

func createCmd(cmd *cobra.Command, convert converter) *cobra.Command {
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logLevel, err := getUserSetVar(cmd, logLevelFlagName, logLevelEnvKey, true)
		if err != nil {
			return err
		}

		err = setLogLevel(logLevel)
		if err != nil {
			return err
		}

		parameters, err := getConvertParameters(cmd)
		if err != nil {
			return err
		}

		raw, err := readInput(cmd, parameters.input)
		if err != nil {
			return err
		}

		msg, err := convert(raw)
		if err != nil {
			return err
		}

		return writeOutput(cmd.OutOrStdout(), msg, parameters.pretty)
	}

	createFlags(cmd)

	return cmd
}

func fromLegacy(raw []byte) (interface{}, error) {
	in, err := legacy.Parse(raw)
	if err != nil {
		return nil, err
	}

	if indyOffer, e := in.IndyOffer(); e == nil {
		logger.Debugf("converting legacy offer for schema [%s] cred def [%s]", indyOffer.SchemaID, indyOffer.CredDefID)
	}

	offer, err := issuecredential.FromLegacy(in)
	if err != nil {
		return nil, errors.Wrap(err, "convert legacy offer")
	}

	return offer.ToDIDCommMsg()
}

func toLegacy(raw []byte) (interface{}, error) {
	msg, err := service.ParseDIDCommMsgMap(raw)
	if err != nil {
		return nil, err
	}

	offer, err := issuecredential.ParseOfferCredential(msg)
	if err != nil {
		return nil, err
	}

	out, err := issuecredential.ToLegacy(&offer)
	if err != nil {
		return nil, errors.Wrap(err, "convert offer-credential")
	}

	return out, nil
}

func getConvertParameters(cmd *cobra.Command) (*convertParameters, error) {
	input, err := getUserSetVar(cmd, inputFlagName, inputEnvKey, true)
	if err != nil {
		return nil, err
	}

	prettyValue, err := getUserSetVar(cmd, prettyFlagName, prettyEnvKey, true)
	if err != nil {
		return nil, err
	}

	pretty := false

	if prettyValue != "" {
		pretty, err = strconv.ParseBool(prettyValue)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s '%s': %w", prettyFlagName, prettyValue, err)
		}
	}

	return &convertParameters{input: input, pretty: pretty}, nil
}

func readInput(cmd *cobra.Command, input string) ([]byte, error) {
	if input == "" || input == stdinInput {
		raw, err := io.ReadAll(cmd.InOrStdin())

		return raw, errors.Wrap(err, "read standard input")
	}

	raw, err := os.ReadFile(input) //nolint:gosec
	if err != nil {
		return nil, errors.Wrapf(err, "read input file %s", input)
	}

	return raw, nil
}

func writeOutput(w io.Writer, msg interface{}, pretty bool) error {
	var (
		raw []byte
		err error
	)

	if pretty {
		raw, err = json.MarshalIndent(msg, "", "  ")
	} else {
		raw, err = json.Marshal(msg)
	}

	if err != nil {
		return errors.Wrap(err, "marshal converted message")
	}

	_, err = fmt.Fprintln(w, string(raw))

	return errors.Wrap(err, "write converted message")
}

func createFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(inputFlagName, inputFlagShorthand, "", inputFlagUsage)
	cmd.Flags().StringP(logLevelFlagName, "", "", logLevelFlagUsage)
	cmd.Flags().StringP(prettyFlagName, prettyFlagShorthand, "", prettyFlagUsage)
}

func getUserSetVar(cmd *cobra.Command, flagName, envKey string, isOptional bool) (string, error) {
	if cmd.Flags().Changed(flagName) {
		value, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return "", fmt.Errorf(flagName+" flag not found: %s", err)
		}

		return value, nil
	}

	value, isSet := os.LookupEnv(envKey)

	if isOptional || isSet {
		return value, nil
	}

	return "", errors.New("Neither " + flagName + " (command line flag) nor " + envKey +
		" (environment variable) have been set.")
}

func setLogLevel(logLevel string) error {
	if logLevel != "" {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("failed to parse log level '%s' : %w", logLevel, err)
		}

		log.SetLevel("", level)

		logger.Infof("logger level set to %s", logLevel)
	}

	return nil
}

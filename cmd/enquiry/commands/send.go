package commands

import (
	"fmt"

	"github.com/shandysiswandi/enquiry/internal/enquiry"
	"github.com/spf13/cobra"
)

func sendCmd(opts *options) *cobra.Command {
	var (
		form     enquiry.Form
		products []string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Submit an enquiry without the interactive form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := enquiry.NewSession(opts.catalog, opts.relay, opts.controllerConfig(nil))
			defer session.Close()

			picked := make([]enquiry.Product, 0, len(products))
			for _, id := range products {
				p, ok := opts.catalog.Lookup(id)
				if !ok {
					return fmt.Errorf("%w: %s", enquiry.ErrUnknownProduct, id)
				}
				picked = append(picked, p)
			}
			if err := session.Selector().MoveToSelected(picked...); err != nil {
				return err
			}
			session.Update(func(f *enquiry.Form) { *f = form })

			st, err := session.Submit(cmd.Context())
			if err != nil {
				return err
			}

			switch st.Kind {
			case enquiry.StatusSuccess:
				fmt.Fprintln(cmd.OutOrStdout(), st.Message)
				return nil
			case enquiry.StatusError:
				fmt.Fprintln(cmd.ErrOrStderr(), st.Message)
				return st.Err
			default:
				// honeypot: report nothing
				return nil
			}
		},
	}

	f := cmd.Flags()
	f.StringVar(&form.Name, "name", "", "your full name (required)")
	f.StringVar(&form.Email, "email", "", "your email address (required)")
	f.StringVar(&form.Phone, "phone", "", "your phone number (required)")
	f.StringVar(&form.Company, "company", "", "company name")
	f.StringVar(&form.Message, "message", "", "what you need")
	f.StringVar(&form.Website, "website", "", "leave empty")
	_ = f.MarkHidden("website")
	f.StringSliceVarP(&products, "product", "p", nil, "product id to enquire about (repeatable)")

	return cmd
}

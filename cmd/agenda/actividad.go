package main

import (
	"encoding/json"
	"fmt"
	"io"

	"agenda_tecnica/internal/domain/entities"
	"agenda_tecnica/pkg/client"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List actividades (today by default)",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listFecha   string
	listTecnico string
	listAgente  string
	listJSON    bool
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one actividad",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an actividad",
	Args:  cobra.NoArgs,
	RunE:  runCreate,
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update the given fields of an actividad",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

var estadoCmd = &cobra.Command{
	Use:   "estado <id> <estado>",
	Short: "Change the estado of an actividad",
	Long:  "Change the estado of an actividad. Valid values: PENDIENTE, EN_RUTA, FINALIZADO, VALIDANDO, CANCELADO.",
	Args:  cobra.ExactArgs(2),
	RunE:  runEstado,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an actividad",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var resumenCmd = &cobra.Command{
	Use:   "resumen",
	Short: "Show the dashboard counters",
	Args:  cobra.NoArgs,
	RunE:  runResumen,
}

var resumenFecha string

// actividadFlags are the field flags shared by create and update.
type actividadFlags struct {
	tipo, cliente, horario, servicio, direccion, telefono string
	costo, estado, tecnico, agente, fecha, notas          string
}

var (
	createFlags actividadFlags
	updateFlags actividadFlags
)

func (f *actividadFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.tipo, "tipo", "", "Tipo (SOPORTE, INSTALACION, MIGRACION, FIBRA, ANTENA)")
	fs.StringVar(&f.cliente, "cliente", "", "Cliente")
	fs.StringVar(&f.horario, "horario", "", "Horario, e.g. \"09:00 - 11:00\"")
	fs.StringVar(&f.servicio, "servicio", "", "Servicio")
	fs.StringVar(&f.direccion, "direccion", "", "Dirección")
	fs.StringVar(&f.telefono, "telefono", "", "Teléfono")
	fs.StringVar(&f.costo, "costo", "", "Costo")
	fs.StringVar(&f.estado, "estado", "", "Estado")
	fs.StringVar(&f.tecnico, "tecnico", "", "Técnico asignado")
	fs.StringVar(&f.agente, "agente", "", "Agente que registra")
	fs.StringVar(&f.fecha, "fecha", "", "Fecha (YYYY-MM-DD)")
	fs.StringVar(&f.notas, "notas", "", "Notas")
}

// patch only carries the flags that were set on the command line.
func (f *actividadFlags) patch(cmd *cobra.Command) client.Patch {
	var p client.Patch
	set := func(name string, dst **string, v string) {
		if cmd.Flags().Changed(name) {
			value := v
			*dst = &value
		}
	}
	set("tipo", &p.Tipo, f.tipo)
	set("cliente", &p.Cliente, f.cliente)
	set("horario", &p.Horario, f.horario)
	set("servicio", &p.Servicio, f.servicio)
	set("direccion", &p.Direccion, f.direccion)
	set("telefono", &p.Telefono, f.telefono)
	set("costo", &p.Costo, f.costo)
	set("estado", &p.Estado, f.estado)
	set("tecnico", &p.AssignedTo, f.tecnico)
	set("agente", &p.CreatedBy, f.agente)
	set("fecha", &p.Fecha, f.fecha)
	set("notas", &p.Notas, f.notas)
	return p
}

func init() {
	rootCmd.AddCommand(listCmd, showCmd, createCmd, updateCmd, estadoCmd, deleteCmd, resumenCmd)

	listCmd.Flags().StringVar(&listFecha, "fecha", "", "Fecha (YYYY-MM-DD, hoy or all)")
	listCmd.Flags().StringVar(&listTecnico, "tecnico", "", "Filter by technician")
	listCmd.Flags().StringVar(&listAgente, "agente", "", "Filter by office agent")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")

	createFlags.bind(createCmd)
	_ = createCmd.MarkFlagRequired("cliente")
	updateFlags.bind(updateCmd)

	resumenCmd.Flags().StringVar(&resumenFecha, "fecha", "", "Fecha (YYYY-MM-DD, hoy or all)")
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	items, err := c.List(cmd.Context(), entities.ListFilter{Fecha: listFecha, AssignedTo: listTecnico, CreatedBy: listAgente})
	if err != nil {
		return err
	}
	if listJSON {
		return writeJSON(cmd.OutOrStdout(), items)
	}
	printActividadTable(cmd.OutOrStdout(), items)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	a, err := c.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	printActividadDetail(cmd.OutOrStdout(), a)
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	f := createFlags
	a, err := c.Create(cmd.Context(), client.NewActividad{
		Tipo:       f.tipo,
		Cliente:    f.cliente,
		Horario:    f.horario,
		Servicio:   f.servicio,
		Direccion:  f.direccion,
		Telefono:   f.telefono,
		Costo:      f.costo,
		Estado:     f.estado,
		AssignedTo: f.tecnico,
		CreatedBy:  f.agente,
		Fecha:      f.fecha,
		Notas:      f.notas,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", a.ID)
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	a, err := c.Update(cmd.Context(), args[0], updateFlags.patch(cmd))
	if err != nil {
		return err
	}
	printActividadDetail(cmd.OutOrStdout(), a)
	return nil
}

func runEstado(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	a, err := c.UpdateEstado(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", a.ID, estadoLabel(a.Estado))
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	if err := c.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Actividad eliminada %s\n", args[0])
	return nil
}

func runResumen(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	r, err := c.Resumen(cmd.Context(), resumenFecha)
	if err != nil {
		return err
	}
	printResumen(cmd.OutOrStdout(), r)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

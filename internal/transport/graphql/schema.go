package graphql

import (
	"time"

	"github.com/graphql-go/graphql"

	"github.com/mzaytsev/taskmirror/internal/domain"
	"github.com/mzaytsev/taskmirror/internal/models"
	"github.com/mzaytsev/taskmirror/internal/service"
)

var statusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "TaskStatus",
	Values: graphql.EnumValueConfigMap{
		"TO_DO":       &graphql.EnumValueConfig{Value: "TO_DO"},
		"IN_PROGRESS": &graphql.EnumValueConfig{Value: "IN_PROGRESS"},
		"DONE":        &graphql.EnumValueConfig{Value: "DONE"},
	},
})

var priorityEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "TaskPriority",
	Values: graphql.EnumValueConfigMap{
		"LOW":    &graphql.EnumValueConfig{Value: "LOW"},
		"MEDIUM": &graphql.EnumValueConfig{Value: "MEDIUM"},
		"HIGH":   &graphql.EnumValueConfig{Value: "HIGH"},
	},
})

// newSchema compiles the executable schema. All resolvers delegate to the
// service layer; the only logic here is argument plumbing.
func newSchema(s *Server) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.User).ID, nil
				},
			},
			"username": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.User).Username, nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.User).Email, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(dateTimeScalar),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.User).CreatedAt, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(dateTimeScalar),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.User).UpdatedAt, nil
				},
			},
		},
	})

	taskType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Task",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Task).ID, nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Task).Title, nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Task).Description, nil
				},
			},
			"status": &graphql.Field{
				Type: graphql.NewNonNull(statusEnum),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return string(p.Source.(*models.Task).Status), nil
				},
			},
			"priority": &graphql.Field{
				Type: graphql.NewNonNull(priorityEnum),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return string(p.Source.(*models.Task).Priority), nil
				},
			},
			"dueDate": &graphql.Field{
				Type: dateTimeScalar,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					due := p.Source.(*models.Task).DueDate
					if due == nil {
						return nil, nil
					}
					return *due, nil
				},
			},
			"userId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Task).UserID, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(dateTimeScalar),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Task).CreatedAt, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(dateTimeScalar),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Task).UpdatedAt, nil
				},
			},
		},
	})

	userType.AddFieldConfig("tasks", &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(taskType))),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			caller, err := s.requireAuth(p.Context)
			if err != nil {
				return nil, err
			}
			tasks, err := s.svc.TasksOwnedBy(p.Context, caller, p.Source.(*models.User).ID)
			if err != nil {
				return nil, wrapError(p.Context, s.logger, err)
			}
			return tasks, nil
		},
	})

	taskType.AddFieldConfig("user", &graphql.Field{
		Type: graphql.NewNonNull(userType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			caller, err := s.requireAuth(p.Context)
			if err != nil {
				return nil, err
			}
			owner, err := s.svc.GetUser(p.Context, caller, p.Source.(*models.Task).UserID)
			if err != nil {
				return nil, wrapError(p.Context, s.logger, err)
			}
			return owner, nil
		},
	})

	loginPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "LoginPayload",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"user":  &graphql.Field{Type: graphql.NewNonNull(userType)},
		},
	})

	createUserInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateUserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	loginInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "LoginInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	updateUserInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateUserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	createTaskInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateTaskInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"status":      &graphql.InputObjectFieldConfig{Type: statusEnum},
			"priority":    &graphql.InputObjectFieldConfig{Type: priorityEnum},
			"dueDate":     &graphql.InputObjectFieldConfig{Type: dateTimeScalar},
		},
	})

	updateTaskInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateTaskInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":       &graphql.InputObjectFieldConfig{Type: graphql.String},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"status":      &graphql.InputObjectFieldConfig{Type: statusEnum},
			"priority":    &graphql.InputObjectFieldConfig{Type: priorityEnum},
			"dueDate":     &graphql.InputObjectFieldConfig{Type: dateTimeScalar},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return s.requireAuth(p.Context)
				},
			},
			"users": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(userType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					caller, err := s.requireAuth(p.Context)
					if err != nil {
						return nil, err
					}
					users, err := s.svc.ListUsers(p.Context, caller)
					if err != nil {
						return nil, wrapError(p.Context, s.logger, err)
					}
					return users, nil
				},
			},
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					caller, err := s.requireAuth(p.Context)
					if err != nil {
						return nil, err
					}
					user, err := s.svc.GetUser(p.Context, caller, p.Args["id"].(string))
					if err != nil {
						return nil, wrapError(p.Context, s.logger, err)
					}
					return user, nil
				},
			},
			"tasks": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(taskType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					caller, err := s.requireAuth(p.Context)
					if err != nil {
						return nil, err
					}
					tasks, err := s.svc.ListTasks(p.Context, caller)
					if err != nil {
						return nil, wrapError(p.Context, s.logger, err)
					}
					return tasks, nil
				},
			},
			"task": &graphql.Field{
				Type: taskType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					caller, err := s.requireAuth(p.Context)
					if err != nil {
						return nil, err
					}
					task, err := s.svc.GetTask(p.Context, caller, p.Args["id"].(string))
					if err != nil {
						return nil, wrapError(p.Context, s.logger, err)
					}
					return task, nil
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createUserInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := p.Args["input"].(map[string]interface{})
					user, err := s.svc.CreateUser(p.Context, str(input, "email"), str(input, "password"))
					if err != nil {
						return nil, wrapError(p.Context, s.logger, err)
					}
					return user, nil
				},
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(loginPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(loginInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := p.Args["input"].(map[string]interface{})
					token, user, err := s.svc.Login(p.Context, str(input, "email"), str(input, "password"))
					if err != nil {
						return nil, wrapError(p.Context, s.logger, err)
					}
					return map[string]interface{}{"token": token, "user": user}, nil
				},
			},
			"logout": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					caller, err := s.requireAuth(p.Context)
					if err != nil {
						return nil, err
					}
					if err := s.svc.Logout(p.Context, caller); err != nil {
						return nil, wrapError(p.Context, s.logger, err)
					}
					return true, nil
				},
			},
			"updateUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateUserInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					caller, err := s.requireAuth(p.Context)
					if err != nil {
						return nil, err
					}
					input := p.Args["input"].(map[string]interface{})
					user, err := s.svc.UpdateUser(p.Context, caller, p.Args["id"].(string), str(input, "password"))
					if err != nil {
						return nil, wrapError(p.Context, s.logger, err)
					}
					return user, nil
				},
			},
			"deleteUser": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					caller, err := s.requireAuth(p.Context)
					if err != nil {
						return nil, err
					}
					if err := s.svc.DeleteUser(p.Context, caller, p.Args["id"].(string)); err != nil {
						return nil, wrapError(p.Context, s.logger, err)
					}
					return true, nil
				},
			},
			"createTask": &graphql.Field{
				Type: graphql.NewNonNull(taskType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createTaskInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					caller, err := s.requireAuth(p.Context)
					if err != nil {
						return nil, err
					}
					input := p.Args["input"].(map[string]interface{})
					task, err := s.svc.CreateTask(p.Context, caller, service.CreateTaskInput{
						Title:       str(input, "title"),
						Description: str(input, "description"),
						Status:      domain.TaskStatus(str(input, "status")),
						Priority:    domain.TaskPriority(str(input, "priority")),
						DueDate:     optTime(input, "dueDate"),
					})
					if err != nil {
						return nil, wrapError(p.Context, s.logger, err)
					}
					return task, nil
				},
			},
			"updateTask": &graphql.Field{
				Type: graphql.NewNonNull(taskType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateTaskInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					caller, err := s.requireAuth(p.Context)
					if err != nil {
						return nil, err
					}
					input := p.Args["input"].(map[string]interface{})
					patch := models.TaskPatch{
						Title:       optString(input, "title"),
						Description: optString(input, "description"),
						DueDate:     optTime(input, "dueDate"),
					}
					if raw := optString(input, "status"); raw != nil {
						status := domain.TaskStatus(*raw)
						patch.Status = &status
					}
					if raw := optString(input, "priority"); raw != nil {
						priority := domain.TaskPriority(*raw)
						patch.Priority = &priority
					}
					task, err := s.svc.UpdateTask(p.Context, caller, p.Args["id"].(string), patch)
					if err != nil {
						return nil, wrapError(p.Context, s.logger, err)
					}
					return task, nil
				},
			},
			"deleteTask": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					caller, err := s.requireAuth(p.Context)
					if err != nil {
						return nil, err
					}
					if err := s.svc.DeleteTask(p.Context, caller, p.Args["id"].(string)); err != nil {
						return nil, wrapError(p.Context, s.logger, err)
					}
					return true, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

// str reads an optional string-valued input field, "" when absent.
func str(input map[string]interface{}, key string) string {
	if v, ok := input[key].(string); ok {
		return v
	}
	return ""
}

func optString(input map[string]interface{}, key string) *string {
	if v, ok := input[key].(string); ok {
		return &v
	}
	return nil
}

func optTime(input map[string]interface{}, key string) *time.Time {
	if v, ok := input[key].(time.Time); ok {
		return &v
	}
	return nil
}

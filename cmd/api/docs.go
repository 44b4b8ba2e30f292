package main

// @title           Bizit API
// @version         1.0
// @description     API de estoque e contabilidade comercial: itens, vendas, perdas, fornecedores e remessas
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey UserID
// @in header
// @name user-id
// @description Identificador do usuário autenticado pelo gateway

// @securityDefinitions.apikey OrgID
// @in header
// @name org-id
// @description Organização alvo da requisição
